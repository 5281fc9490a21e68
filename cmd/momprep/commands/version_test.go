// ABOUTME: Tests for version command
// ABOUTME: Verifies version info display and SetVersion functionality

package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func withVersion(t *testing.T, version, commit, date string) {
	original := versionInfo
	t.Cleanup(func() { versionInfo = original })
	SetVersion(version, commit, date)
}

func TestVersionCmd_Output(t *testing.T) {
	useTestApp(t, nil, nil, nil)
	withVersion(t, "1.2.3", "abc123", "2026-01-31")

	out, err := run(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "MomPrep 1.2.3")
	assert.Contains(t, out, "Commit: abc123")
	assert.Contains(t, out, "Built:  2026-01-31")
}

func TestVersionCmd_JSON(t *testing.T) {
	useTestApp(t, nil, nil, nil)
	withVersion(t, "1.2.3", "abc123", "2026-01-31")

	out, err := run(t, "--format", "json", "version")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, VersionInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-31"}, info)
}

func TestSetVersion(t *testing.T) {
	withVersion(t, "v2.0.0", "def456", "2026-02-01")

	assert.Equal(t, "v2.0.0", versionInfo.Version)
	assert.Equal(t, "def456", versionInfo.Commit)
	assert.Equal(t, "2026-02-01", versionInfo.Date)
}
