package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/momprep/internal/core"
	"github.com/harper/momprep/internal/models"
	"github.com/harper/momprep/internal/storage"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt, system string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func newTestHandlers(t *testing.T, gen core.Generator) (*Handlers, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend([]models.CurriculumItem{
		{Topic: "RAG", Category: "AI", Difficulty: models.Budget5Min, Status: models.StatusNew},
		{Topic: "Sagas", Category: "Systems", Difficulty: models.Budget1To2Hr, Status: models.StatusRevision, ContentCache: "Sagas are long transactions."},
		{Topic: "Ledgers", Category: "Fintech", Difficulty: models.Budget15Min, Status: models.StatusDone},
	}, nil)
	store := storage.NewCachedStore(backend)
	coach := core.NewCoach(core.CoachConfig{
		Store:        store,
		ContentModel: gen,
		ChatModel:    gen,
		Rand:         rand.New(rand.NewPCG(1, 2)),
	})
	return NewHandlers(coach), backend
}

func call(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func decode(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.NotNil(t, result)
	require.False(t, result.IsError, "unexpected tool error: %v", result.Content)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func TestRegisterTools(t *testing.T) {
	server := mcpserver.NewMCPServer("test", "0.0.0")
	h, _ := newTestHandlers(t, nil)
	handlers := RegisterTools(server, h.coach)
	assert.NotEmpty(t, handlers.SessionID())
}

func TestNextTopic(t *testing.T) {
	h, _ := newTestHandlers(t, nil)

	result, err := h.NextTopic(context.Background(), call(map[string]any{"mode": "laptop"}))
	require.NoError(t, err)
	out := decode(t, result)
	assert.Equal(t, true, out["found"])
	assert.Equal(t, "Sagas", out["topic"])
	assert.Equal(t, true, out["has_content"])
}

func TestNextTopic_RequiresValidMode(t *testing.T) {
	h, _ := newTestHandlers(t, nil)

	result, err := h.NextTopic(context.Background(), call(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = h.NextTopic(context.Background(), call(map[string]any{"mode": "commute"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestNextTopic_EmptyQueue(t *testing.T) {
	h, _ := newTestHandlers(t, nil)
	ctx := context.Background()
	require.NoError(t, h.coach.MarkDone(ctx, "RAG"))
	require.NoError(t, h.coach.MarkDone(ctx, "Sagas"))

	result, err := h.NextTopic(ctx, call(map[string]any{"mode": "naptime"}))
	require.NoError(t, err)
	out := decode(t, result)
	assert.Equal(t, false, out["found"])
	assert.Equal(t, EmptyQueueMessage, out["message"])
}

func TestGetContent(t *testing.T) {
	gen := &stubGenerator{reply: "generated"}
	h, _ := newTestHandlers(t, gen)
	ctx := context.Background()

	out := decode(t, mustCall(t, h.GetContent, map[string]any{"topic": "Sagas"}))
	assert.Equal(t, true, out["has_content"])
	assert.Equal(t, "Sagas are long transactions.", out["content"])

	out = decode(t, mustCall(t, h.GetContent, map[string]any{"topic": "RAG"}))
	assert.Equal(t, false, out["has_content"])

	assert.Zero(t, gen.calls)

	result, err := h.GetContent(ctx, call(map[string]any{"topic": "Unknown"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGenerateNugget(t *testing.T) {
	gen := &stubGenerator{reply: "RAG in five minutes"}
	h, _ := newTestHandlers(t, gen)

	out := decode(t, mustCall(t, h.GenerateNugget, map[string]any{"topic": "RAG", "mode": "breastfeeding"}))
	assert.Equal(t, true, out["generated"])
	assert.Equal(t, "RAG in five minutes", out["content"])
	assert.Equal(t, string(models.Budget5Min), out["budget"])
	assert.Equal(t, 1, gen.calls)

	topic, content := h.session.CurrentContent()
	assert.Equal(t, "RAG", topic)
	assert.Equal(t, "RAG in five minutes", content)
}

func TestGenerateNugget_Failure(t *testing.T) {
	h, _ := newTestHandlers(t, &stubGenerator{err: errors.New("rate limited")})

	result, err := h.GenerateNugget(context.Background(), call(map[string]any{"topic": "RAG"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMarkDoneAndRevision(t *testing.T) {
	h, backend := newTestHandlers(t, nil)
	ctx := context.Background()

	out := decode(t, mustCall(t, h.MarkRevision, map[string]any{"topic": "RAG"}))
	assert.Equal(t, "Revision", out["status"])

	out = decode(t, mustCall(t, h.MarkDone, map[string]any{"topic": "RAG"}))
	assert.Equal(t, "Done", out["status"])

	items, err := backend.Curriculum(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, items[0].Status)

	result, err := h.MarkRevision(ctx, call(map[string]any{"topic": "Ledgers"}))
	require.NoError(t, err)
	assert.True(t, result.IsError, "Done topics cannot go back to Revision")
}

func TestAsk(t *testing.T) {
	gen := &stubGenerator{reply: "Because retries happen."}
	h, _ := newTestHandlers(t, gen)

	decode(t, mustCall(t, h.GetContent, map[string]any{"topic": "Sagas"}))
	out := decode(t, mustCall(t, h.Ask, map[string]any{"question": "Why compensate?"}))
	assert.Equal(t, "Because retries happen.", out["answer"])
	assert.Equal(t, "Sagas", out["topic"])
	assert.EqualValues(t, 2, out["turns"])
}

func TestTasks(t *testing.T) {
	h, backend := newTestHandlers(t, nil)

	out := decode(t, mustCall(t, h.AddTask, map[string]any{"task": "Update resume", "tag": "laptop"}))
	assert.Equal(t, string(models.TagLaptop), out["tag"])
	assert.EqualValues(t, 1, out["count"])

	out = decode(t, mustCall(t, h.AddTask, map[string]any{"task": "Read RFC"}))
	assert.Equal(t, string(models.TagMobile), out["tag"])

	todos, err := backend.Todos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "Update resume", todos[0].Task)

	out = decode(t, mustCall(t, h.ListTasks, map[string]any{}))
	assert.Len(t, out["tasks"], 2)

	result, err := h.AddTask(context.Background(), call(map[string]any{"task": "x", "tag": "desk"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestListQueue(t *testing.T) {
	h, _ := newTestHandlers(t, nil)

	out := decode(t, mustCall(t, h.ListQueue, map[string]any{}))
	assert.Len(t, out["topics"], 2)
}

func TestStoreUnavailableIsToolError(t *testing.T) {
	h, backend := newTestHandlers(t, nil)
	backend.ReadErr = errors.New("offline")

	result, err := h.ListQueue(context.Background(), call(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func mustCall(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := handler(context.Background(), call(args))
	require.NoError(t, err)
	return result
}
