// ABOUTME: Chat answers follow-up questions grounded on the session's loaded content
package core

import (
	"context"
	"fmt"

	"github.com/harper/momprep/internal/models"
)

// NoTopicPlaceholder stands in for the context when no content is loaded
const NoTopicPlaceholder = "No specific topic loaded."

// BuildPrompt embeds the current content and the user's question in a single prompt.
// history is not sent; the model only sees the current content.
func BuildPrompt(history []models.Message, currentContent string, userMessage string) string {
	if currentContent == "" {
		currentContent = NoTopicPlaceholder
	}
	return fmt.Sprintf("Context: %s\n\nUser Question: %s", currentContent, userMessage)
}

// Chat runs follow-up turns against a generator
type Chat struct {
	gen Generator
}

// NewChat creates a chat over gen
func NewChat(gen Generator) *Chat {
	return &Chat{gen: gen}
}

// Ask records the question, asks the model and records the answer.
// On failure the question stays in the history without an answer.
func (c *Chat) Ask(ctx context.Context, session *Session, message string) (string, error) {
	session.Append(models.RoleUser, message)

	if c.gen == nil {
		return "", fmt.Errorf("%w: no language model configured", ErrGeneration)
	}

	_, content := session.CurrentContent()
	prompt := BuildPrompt(session.History(), content, message)

	reply, err := c.gen.Generate(ctx, prompt, SystemInstruction)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	session.Append(models.RoleAssistant, reply)
	return reply, nil
}
