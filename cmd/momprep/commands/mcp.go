// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes topic selection, nuggets, chat and tasks to LLM agents via stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs MomPrep as an MCP (Model Context Protocol) server, enabling
LLM agents like Claude to pick topics, fetch or generate nuggets,
answer follow-ups and manage tasks via stdio.

One server process is one study session: content loaded by get_content
or generate_nugget is the context for later ask calls.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  momprep mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "momprep": {
  #       "command": "momprep",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"MomPrep",
		versionInfo.Version,
	)

	handlers := mcp.RegisterTools(server, a.coach)
	logger := log.With().Str("cmp", "mcp").Str("session", handlers.SessionID()).Logger()

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("backend", a.cfg.Backend).Msg("MCP server starting on stdio")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
		a.Close()
		logger.Info().Msg("shutdown complete")

	case err := <-serverErr:
		a.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
