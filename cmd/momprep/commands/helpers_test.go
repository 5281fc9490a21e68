package commands

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"

	"github.com/harper/momprep/internal/config"
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

func testCurriculum() []models.CurriculumItem {
	return []models.CurriculumItem{
		{Topic: "RAG", Category: "AI", Difficulty: models.Budget5Min, Status: models.StatusNew},
		{Topic: "Sagas", Category: "Systems", Difficulty: models.Budget1To2Hr, Status: models.StatusNew, ContentCache: "## Sagas\nLong-lived transactions."},
		{Topic: "Ledgers", Category: "Fintech", Difficulty: models.Budget15Min, Status: models.StatusDone},
	}
}

// useTestApp points every command at an in-memory backend and gen
func useTestApp(t *testing.T, curriculum []models.CurriculumItem, todos []models.TodoItem, gen core.Generator) *storage.MemoryBackend {
	t.Helper()
	t.Setenv("MOMPREP_BACKEND", "memory")
	t.Setenv("MOMPREP_LOG_LEVEL", "error")
	t.Setenv("MOMPREP_PERSIST_CONTENT", "false")

	backend := storage.NewMemoryBackend(curriculum, todos)
	store := storage.NewCachedStore(backend)

	origStore, origGen, origRand := newStore, newGenerators, newRand
	newStore = func(*config.Config) (*storage.CachedStore, error) { return store, nil }
	newGenerators = func(*config.Config) (core.Generator, core.Generator) {
		if gen == nil {
			return nil, nil
		}
		return gen, gen
	}
	newRand = func() core.Rand { return rand.New(rand.NewPCG(1, 2)) }

	t.Cleanup(func() {
		newStore, newGenerators, newRand = origStore, origGen, origRand
		cfg = nil
	})
	return backend
}

// run executes the root command with args and returns combined output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
