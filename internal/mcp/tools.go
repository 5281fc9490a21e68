// ABOUTME: MCP tool definitions and registration for the MomPrep server
// ABOUTME: Defines JSON schemas for the study, chat and task tools
package mcp

import (
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/momprep/internal/core"
	"github.com/harper/momprep/internal/logging"
)

var modeProperty = map[string]interface{}{
	"type":        "string",
	"description": "Current mode: breastfeeding (5 minutes), naptime (15 minutes) or laptop (1-2 hours)",
	"enum":        []string{"breastfeeding", "naptime", "laptop"},
}

var topicProperty = map[string]interface{}{
	"type":        "string",
	"description": "Curriculum topic, matched exactly",
}

// NewHandlers creates handlers with a fresh study session
func NewHandlers(coach *core.Coach) *Handlers {
	id := uuid.New().String()
	return &Handlers{
		coach:     coach,
		session:   core.NewSession(),
		sessionID: id,
		log:       logging.Component("mcp").With().Str("session", id).Logger(),
	}
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, coach *core.Coach) *Handlers {
	handlers := NewHandlers(coach)

	// 1. next_topic - Pick a topic for the current mode
	server.AddTool(mcp.Tool{
		Name:        "next_topic",
		Description: "Pick a random New or Revision topic that fits the current mode's time budget. Falls back to the whole queue when nothing matches.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"mode": modeProperty,
			},
			Required: []string{"mode"},
		},
	}, handlers.NextTopic)

	// 2. get_content - Return stored content without generating
	server.AddTool(mcp.Tool{
		Name:        "get_content",
		Description: "Return the pre-generated study content for a topic and load it as chat context. Never calls the LLM.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": topicProperty,
			},
			Required: []string{"topic"},
		},
	}, handlers.GetContent)

	// 3. generate_nugget - Generate content when none is stored
	server.AddTool(mcp.Tool{
		Name:        "generate_nugget",
		Description: "Generate a study nugget for a topic. Stored content is returned as-is without calling the LLM.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": topicProperty,
				"mode":  modeProperty,
			},
			Required: []string{"topic"},
		},
	}, handlers.GenerateNugget)

	// 4. mark_done - Move a topic to Done
	server.AddTool(mcp.Tool{
		Name:        "mark_done",
		Description: "Mark a topic as Done. Done topics are never selected again.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": topicProperty,
			},
			Required: []string{"topic"},
		},
	}, handlers.MarkDone)

	// 5. mark_revision - Move a topic to Revision
	server.AddTool(mcp.Tool{
		Name:        "mark_revision",
		Description: "Mark a topic for revision so it stays in the queue.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": topicProperty,
			},
			Required: []string{"topic"},
		},
	}, handlers.MarkRevision)

	// 6. ask - Follow-up chat grounded in the loaded content
	server.AddTool(mcp.Tool{
		Name:        "ask",
		Description: "Ask a follow-up question. The content loaded by get_content or generate_nugget is sent as context.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to ask",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.Ask)

	// 7. add_task - Append a task to the todo list
	server.AddTool(mcp.Tool{
		Name:        "add_task",
		Description: "Add a pending task tagged Mobile/Nursing or Laptop/Focus.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"task": map[string]interface{}{
					"type":        "string",
					"description": "Task description",
				},
				"tag": map[string]interface{}{
					"type":        "string",
					"description": "Context tag (default: Mobile/Nursing)",
					"enum":        []string{"Mobile/Nursing", "Laptop/Focus"},
				},
			},
			Required: []string{"task"},
		},
	}, handlers.AddTask)

	// 8. list_tasks - List the todo table
	server.AddTool(mcp.Tool{
		Name:        "list_tasks",
		Description: "List all tasks in insertion order.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListTasks)

	// 9. list_queue - List selectable topics
	server.AddTool(mcp.Tool{
		Name:        "list_queue",
		Description: "List every New or Revision topic in the curriculum.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListQueue)

	return handlers
}
