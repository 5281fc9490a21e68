// ABOUTME: Standalone MomPrep MCP server with stdio transport
// ABOUTME: Same tools as 'momprep mcp', packaged as its own binary for agent configs
package main

import (
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/harper/momprep/internal/config"
	"github.com/harper/momprep/internal/core"
	"github.com/harper/momprep/internal/llm"
	"github.com/harper/momprep/internal/logging"
	"github.com/harper/momprep/internal/mcp"
	"github.com/harper/momprep/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closeLog()

	store, err := storage.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to store")
	}
	defer store.Close()

	coachCfg := core.CoachConfig{Store: store, PersistContent: cfg.PersistContent}
	content, chat, err := llm.ClientsFromConfig(cfg)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("failed to initialize language models")
	case content == nil:
		log.Warn().Msg("OPENAI_API_KEY not set - content generation and chat are disabled")
	default:
		coachCfg.ContentModel = content
		coachCfg.ChatModel = chat
	}

	server := mcpserver.NewMCPServer("MomPrep", "0.1.0")
	handlers := mcp.RegisterTools(server, core.NewCoach(coachCfg))

	log.Info().Str("session", handlers.SessionID()).Msg("MomPrep MCP server starting on stdio")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}
