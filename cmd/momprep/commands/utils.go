// ABOUTME: Shared output helpers for CLI commands
// ABOUTME: JSON output, markdown rendering with glamour and lipgloss headings
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// jsonOutput reports whether output should be JSON
func jsonOutput() bool {
	return outputFormat == "json"
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styled reports whether output to w gets colors and markdown rendering
func styled(w io.Writer) bool {
	switch outputFormat {
	case "text", "json":
		return false
	}
	return isTerminal(w)
}

// heading renders a title line
func heading(w io.Writer, title string) string {
	if !styled(w) {
		return title
	}
	return headingStyle.Render(title)
}

// muted renders secondary text
func muted(w io.Writer, s string) string {
	if !styled(w) {
		return s
	}
	return mutedStyle.Render(s)
}

// renderMarkdown renders md for w: styled on a terminal, raw otherwise
func renderMarkdown(w io.Writer, md string) string {
	if !styled(w) {
		return strings.TrimRight(md, "\n") + "\n"
	}

	width := 80
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// info prints an informational line unless --quiet is set
func info(w io.Writer, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(w, format+"\n", args...)
}
