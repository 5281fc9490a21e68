// ABOUTME: Opens the store and LLM clients behind each command invocation
// ABOUTME: Package-level constructors are swapped out in tests
package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/harper/momprep/internal/config"
	"github.com/harper/momprep/internal/core"
	"github.com/harper/momprep/internal/llm"
	"github.com/harper/momprep/internal/storage"
)

var (
	newStore      = storage.Open
	newGenerators = openGenerators
	newRand       = func() core.Rand { return nil }
)

// app is the set of dependencies a command works with
type app struct {
	cfg   *config.Config
	store *storage.CachedStore
	coach *core.Coach
}

// openApp opens the configured store and builds a coach over it.
// persist forces content write-back on regardless of configuration.
func openApp(persist bool) (*app, error) {
	c, err := currentConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := newStore(c)
	if err != nil {
		return nil, fmt.Errorf("could not connect to store: %w", err)
	}

	contentModel, chatModel := newGenerators(c)
	coach := core.NewCoach(core.CoachConfig{
		Store:          store,
		ContentModel:   contentModel,
		ChatModel:      chatModel,
		Rand:           newRand(),
		PersistContent: persist || c.PersistContent,
	})

	return &app{cfg: c, store: store, coach: coach}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing store")
	}
}

// openGenerators returns the content and chat models, or nils when no API
// key is configured. Generation then fails with a clear error while cached
// content keeps working.
func openGenerators(c *config.Config) (core.Generator, core.Generator) {
	content, chat, err := llm.ClientsFromConfig(c)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize language models")
		return nil, nil
	}
	if content == nil {
		log.Warn().Msg("OPENAI_API_KEY not set - content generation and chat are disabled")
		return nil, nil
	}
	return content, chat
}
