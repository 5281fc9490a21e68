package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/momprep/internal/models"
)

func TestExportImport_YAML(t *testing.T) {
	ctx := context.Background()
	src, _, _ := newTestCachedStore(t)

	data, err := src.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExportVersion, data.Version)
	assert.NotEmpty(t, data.ID)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, data))
	assert.Contains(t, buf.String(), "topic: Sagas")

	decoded, err := ReadYAML(&buf)
	require.NoError(t, err)

	dst := NewCachedStore(NewMemoryBackend(nil, nil))
	require.NoError(t, dst.Import(ctx, decoded))

	curriculum, err := dst.Curriculum(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Curriculum, curriculum)

	todos, err := dst.Todos(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Todos, todos)
}

func TestImport_RejectsUnknownVersion(t *testing.T) {
	store := NewCachedStore(NewMemoryBackend(nil, nil))
	err := store.Import(context.Background(), &ExportData{Version: "9.9"})
	assert.Error(t, err)
}

func TestWriteMarkdown(t *testing.T) {
	data := &ExportData{
		ExportedAt: "2026-01-01T00:00:00Z",
		Curriculum: []models.CurriculumItem{
			{Topic: "A|B", Category: "AI", Difficulty: models.Budget5Min, Status: models.StatusNew, ContentCache: "x"},
		},
		Todos: []models.TodoItem{
			{Task: "Pending one", Tag: models.TagMobile, Status: models.TodoStatusPending},
			{Task: "Finished one", Tag: models.TagLaptop, Status: "Done"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, data))
	out := buf.String()

	assert.Contains(t, out, "## Curriculum")
	assert.Contains(t, out, `A\|B`)
	assert.Contains(t, out, "- [ ] Pending one (Mobile/Nursing)")
	assert.Contains(t, out, "- [x] Finished one (Laptop/Focus)")
}

func TestRepairDuplicateTopics(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend([]models.CurriculumItem{
		{Topic: "Sagas", Status: models.StatusNew},
		{Topic: "Ledgers", Status: models.StatusNew},
		{Topic: "Sagas", Status: models.StatusDone},
	}, nil)
	store := NewCachedStore(backend)

	removed, err := store.RepairDuplicateTopics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	items, err := store.Curriculum(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.StatusNew, items[0].Status)

	removed, err = store.RepairDuplicateTopics(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, 1, backend.Writes(TableCurriculum))
}
