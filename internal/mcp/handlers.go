// ABOUTME: MCP tool handler implementations for the MomPrep server
// ABOUTME: Failures are returned as tool errors so the server keeps running
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/harper/momprep/internal/core"
	"github.com/harper/momprep/internal/models"
)

// EmptyQueueMessage is returned when every topic is Done
const EmptyQueueMessage = "You finished your queue!"

// Handlers contains the handler functions for all MCP tools.
// One server process is one study session.
type Handlers struct {
	coach     *core.Coach
	session   *core.Session
	sessionID string
	log       zerolog.Logger
}

// SessionID returns the id of the handlers' study session
func (h *Handlers) SessionID() string {
	return h.sessionID
}

// NextTopic handles the next_topic tool
func (h *Handlers) NextTopic(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	modeArg, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError("mode argument is required and must be a string"), nil
	}
	mode, err := models.ParseMode(modeArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	item, ok, err := h.coach.Next(ctx, mode.Budget())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to select topic: %v", err)), nil
	}
	if !ok {
		return jsonResult(map[string]interface{}{
			"found":   false,
			"message": EmptyQueueMessage,
		})
	}

	return jsonResult(map[string]interface{}{
		"found":       true,
		"topic":       item.Topic,
		"category":    item.Category,
		"difficulty":  item.Difficulty,
		"status":      item.Status,
		"has_content": item.HasContent(),
		"mode":        mode,
		"budget":      mode.Budget(),
	})
}

// GetContent handles the get_content tool
func (h *Handlers) GetContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic argument is required and must be a string"), nil
	}

	item, err := h.coach.Find(ctx, topic)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to find topic: %v", err)), nil
	}

	text, _, err := h.coach.Content(ctx, h.session, item, item.Difficulty, false)
	if errors.Is(err, core.ErrNotGenerated) {
		return jsonResult(map[string]interface{}{
			"topic":       item.Topic,
			"has_content": false,
			"message":     "No pre-generated content. Call generate_nugget to create it.",
		})
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load content: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"topic":       item.Topic,
		"has_content": true,
		"content":     text,
	})
}

// GenerateNugget handles the generate_nugget tool
func (h *Handlers) GenerateNugget(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic argument is required and must be a string"), nil
	}

	item, err := h.coach.Find(ctx, topic)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to find topic: %v", err)), nil
	}

	// The topic's own difficulty is the budget unless a mode is given
	budget := item.Difficulty
	if modeArg := request.GetString("mode", ""); modeArg != "" {
		mode, err := models.ParseMode(modeArg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		budget = mode.Budget()
	}

	text, generated, err := h.coach.Content(ctx, h.session, item, budget, true)
	if err != nil {
		h.log.Warn().Err(err).Str("topic", topic).Msg("nugget generation failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate content: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"topic":     item.Topic,
		"budget":    budget,
		"generated": generated,
		"content":   text,
	})
}

// MarkDone handles the mark_done tool
func (h *Handlers) MarkDone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.setStatus(ctx, request, models.StatusDone, h.coach.MarkDone)
}

// MarkRevision handles the mark_revision tool
func (h *Handlers) MarkRevision(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.setStatus(ctx, request, models.StatusRevision, h.coach.MarkRevision)
}

func (h *Handlers) setStatus(ctx context.Context, request mcp.CallToolRequest, to models.Status, apply func(context.Context, string) error) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic argument is required and must be a string"), nil
	}

	if err := apply(ctx, topic); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update status: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"success": true,
		"topic":   topic,
		"status":  to,
	})
}

// Ask handles the ask tool
func (h *Handlers) Ask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	reply, err := h.coach.Ask(ctx, h.session, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to answer: %v", err)), nil
	}

	topic, _ := h.session.CurrentContent()
	return jsonResult(map[string]interface{}{
		"answer": reply,
		"topic":  topic,
		"turns":  len(h.session.History()),
	})
}

// AddTask handles the add_task tool
func (h *Handlers) AddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	task, err := request.RequireString("task")
	if err != nil {
		return mcp.NewToolResultError("task argument is required and must be a string"), nil
	}

	tag, err := models.ParseTag(request.GetString("tag", string(models.TagMobile)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	todos, err := h.coach.AddTask(ctx, task, tag)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"success": true,
		"task":    task,
		"tag":     tag,
		"count":   len(todos),
	})
}

// ListTasks handles the list_tasks tool
func (h *Handlers) ListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	todos, err := h.coach.Tasks(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list tasks: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"tasks": todos,
	})
}

// ListQueue handles the list_queue tool
func (h *Handlers) ListQueue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queue, err := h.coach.Queue(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list queue: %v", err)), nil
	}

	topics := make([]map[string]interface{}, 0, len(queue))
	for _, item := range queue {
		topics = append(topics, map[string]interface{}{
			"topic":       item.Topic,
			"category":    item.Category,
			"difficulty":  item.Difficulty,
			"status":      item.Status,
			"has_content": item.HasContent(),
		})
	}

	return jsonResult(map[string]interface{}{
		"topics": topics,
	})
}

func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
