// ABOUTME: OpenAI-compatible chat completion client used to generate nuggets and chat replies
// ABOUTME: Works against OpenAI or any compatible endpoint (e.g. Gemini) via BaseURL
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is used when no model is configured
	DefaultModel = "gpt-4o-mini"
	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 60 * time.Second
)

// ErrEmptyResponse is returned when the API answers without any content
var ErrEmptyResponse = errors.New("no completion choices returned")

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float32
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:      apiKey,
		Model:       DefaultModel,
		Timeout:     DefaultTimeout,
		Temperature: 0.7,
	}
}

// chatCompleter is the part of *openai.Client this package uses
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient generates text with a single chat completion model.
// Each call is attempted once; failures are returned to the caller.
type OpenAIClient struct {
	client      chatCompleter
	model       string
	timeout     time.Duration
	temperature float32
}

// NewOpenAIClient creates a new client with the given API key and model
func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	cfg := DefaultConfig(apiKey)
	if model != "" {
		cfg.Model = model
	}
	return NewOpenAIClientWithConfig(cfg)
}

// NewOpenAIClientWithConfig creates a new client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set OPENAI_API_KEY or GEMINI_API_KEY)")
	}

	oc := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		oc.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(oc),
		model:       model,
		timeout:     timeout,
		temperature: config.Temperature,
	}, nil
}

// Model returns the model this client calls
func (c *OpenAIClient) Model() string {
	return c.model
}

// Generate sends prompt as the user message with system as the system instruction
func (c *OpenAIClient) Generate(ctx context.Context, prompt, system string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion (%s): %w", c.model, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
