package core

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/harper/momprep/internal/models"
	"github.com/harper/momprep/internal/storage"
)

type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
	systems []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt, system string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.systems = append(f.systems, system)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func sampleCurriculum() []models.CurriculumItem {
	return []models.CurriculumItem{
		{Topic: "RAG", Category: "AI", Difficulty: models.Budget5Min, Status: models.StatusNew},
		{Topic: "Vector Databases", Category: "AI", Difficulty: models.Budget15Min, Status: models.StatusRevision},
		{Topic: "Idempotency Keys", Category: "Payments", Difficulty: models.Budget5Min, Status: models.StatusDone},
		{Topic: "Sagas", Category: "System Design", Difficulty: models.Budget1To2Hr, Status: models.StatusNew, ContentCache: "X"},
		{Topic: "Double Entry Ledger", Category: "Payments", Difficulty: models.Budget1To2Hr, Status: models.StatusDone},
	}
}

func newTestStore(t *testing.T, curriculum []models.CurriculumItem, todos []models.TodoItem) (*storage.CachedStore, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend(curriculum, todos)
	return storage.NewCachedStore(backend), backend
}
