package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	resp        openai.ChatCompletionResponse
	err         error
	got         openai.ChatCompletionRequest
	hasDeadline bool
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.got = req
	_, f.hasDeadline = ctx.Deadline()
	return f.resp, f.err
}

func reply(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClient("", "")
	assert.Error(t, err)
}

func TestNewOpenAIClientWithConfig_Defaults(t *testing.T) {
	c, err := NewOpenAIClientWithConfig(&ClientConfig{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestGenerate_SendsSystemAndPrompt(t *testing.T) {
	fake := &fakeCompleter{resp: reply("  Sagas coordinate local transactions.  ")}
	c := &OpenAIClient{client: fake, model: "gpt-4o", timeout: time.Second}

	got, err := c.Generate(context.Background(), "Explain sagas", "You are a coach")
	require.NoError(t, err)

	assert.Equal(t, "Sagas coordinate local transactions.", got)
	assert.Equal(t, "gpt-4o", fake.got.Model)
	require.Len(t, fake.got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.got.Messages[0].Role)
	assert.Equal(t, "You are a coach", fake.got.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, fake.got.Messages[1].Role)
	assert.Equal(t, "Explain sagas", fake.got.Messages[1].Content)
	assert.True(t, fake.hasDeadline)
}

func TestGenerate_OmitsEmptySystem(t *testing.T) {
	fake := &fakeCompleter{resp: reply("ok")}
	c := &OpenAIClient{client: fake, model: "m", timeout: time.Second}

	_, err := c.Generate(context.Background(), "hi", "")
	require.NoError(t, err)
	require.Len(t, fake.got.Messages, 1)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeCompleter
	}{
		{"api error", &fakeCompleter{err: errors.New("429 quota")}},
		{"no choices", &fakeCompleter{resp: openai.ChatCompletionResponse{}}},
		{"blank content", &fakeCompleter{resp: reply("   ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &OpenAIClient{client: tt.fake, model: "m", timeout: time.Second}
			_, err := c.Generate(context.Background(), "hi", "sys")
			assert.Error(t, err)
		})
	}
}
