// ABOUTME: Tests for shared CLI helpers
// ABOUTME: Covers truncation, JSON output and plain-text rendering
package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello..."},
		{"tiny max", "hello", 2, "he"},
		{"unicode", "héllo wörld", 8, "héllo..."},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.maxLen))
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]string{"topic": "RAG"}))
	assert.Equal(t, "{\n  \"topic\": \"RAG\"\n}\n", buf.String())
}

func TestRenderMarkdown_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "# Title\n", renderMarkdown(&buf, "# Title\n\n"))
	assert.Equal(t, "Sagas", heading(&buf, "Sagas"))
	assert.Equal(t, "note", muted(&buf, "note"))
}

func TestInfo_RespectsQuiet(t *testing.T) {
	defer func() { quiet = false }()

	var buf bytes.Buffer
	info(&buf, "hello %s", "there")
	assert.Equal(t, "hello there\n", buf.String())

	buf.Reset()
	quiet = true
	info(&buf, "hidden")
	assert.Empty(t, buf.String())
}
