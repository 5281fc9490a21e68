// ABOUTME: Tests for sync commands
// ABOUTME: Verifies command structure, backend guard and duplicate repair

package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/momprep/internal/models"
)

func TestNewSyncCmd(t *testing.T) {
	cmd := NewSyncCmd()

	assert.Equal(t, "sync", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Contains(t, cmd.Long, "Charm")

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Use)
		assert.NotEmpty(t, sub.Short, "%s should have a short description", sub.Use)
		assert.NotNil(t, sub.RunE, "%s should have RunE", sub.Use)
	}
	assert.ElementsMatch(t, []string{"status", "now", "repair", "wipe", "keys"}, names)
}

func TestSyncWipe_RequiresConfirm(t *testing.T) {
	useTestApp(t, nil, nil, nil)

	out, err := run(t, "sync", "wipe")
	require.NoError(t, err)
	assert.Contains(t, out, "--confirm")
}

func TestSyncNow_NeedsCharmBackend(t *testing.T) {
	useTestApp(t, nil, nil, nil)

	_, err := run(t, "sync", "now")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MOMPREP_BACKEND=charm")
}

func TestSyncStatus_LocalBackend(t *testing.T) {
	useTestApp(t, nil, nil, nil)

	out, err := run(t, "sync", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend: memory (not synced)")
}

func TestSyncRepair(t *testing.T) {
	curriculum := append(testCurriculum(), models.CurriculumItem{Topic: "RAG", Status: models.StatusDone})
	backend := useTestApp(t, curriculum, nil, nil)

	out, err := run(t, "sync", "repair")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 duplicate")

	items, err := backend.Curriculum(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)

	out, err = run(t, "sync", "repair")
	require.NoError(t, err)
	assert.Contains(t, out, "No repair needed")
}
