// ABOUTME: Export and import of both tables as YAML, plus a Markdown report
// ABOUTME: Import restores an export with full-table overwrite semantics
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harper/momprep/internal/models"
)

// ExportVersion is written into every export
const ExportVersion = "1.0"

// ExportData is the on-disk shape of an export
type ExportData struct {
	ID         string                  `yaml:"id" json:"id"`
	Version    string                  `yaml:"version" json:"version"`
	ExportedAt string                  `yaml:"exported_at" json:"exported_at"`
	Tool       string                  `yaml:"tool" json:"tool"`
	Curriculum []models.CurriculumItem `yaml:"curriculum" json:"curriculum"`
	Todos      []models.TodoItem       `yaml:"todos" json:"todos"`
}

// Export reads both tables fresh from the backend
func (s *CachedStore) Export(ctx context.Context) (*ExportData, error) {
	curriculum, err := s.FreshCurriculum(ctx)
	if err != nil {
		return nil, err
	}
	todos, err := s.FreshTodos(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportData{
		ID:         uuid.New().String(),
		Version:    ExportVersion,
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "momprep",
		Curriculum: curriculum,
		Todos:      todos,
	}, nil
}

// Import overwrites both tables with the contents of data
func (s *CachedStore) Import(ctx context.Context, data *ExportData) error {
	if data.Version != "" && data.Version != ExportVersion {
		return fmt.Errorf("unsupported export version %q", data.Version)
	}
	if err := s.ReplaceCurriculum(ctx, data.Curriculum); err != nil {
		return err
	}
	return s.ReplaceTodos(ctx, data.Todos)
}

// WriteYAML encodes an export as YAML
func WriteYAML(w io.Writer, data *ExportData) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// ReadYAML decodes an export written by WriteYAML
func ReadYAML(r io.Reader) (*ExportData, error) {
	var data ExportData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return &data, nil
}

// WriteMarkdown renders an export as a readable report
func WriteMarkdown(w io.Writer, data *ExportData) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# MomPrep Export - %s\n\n", data.ExportedAt)

	if len(data.Curriculum) > 0 {
		b.WriteString("## Curriculum\n\n")
		b.WriteString("| Topic | Category | Difficulty | Status | Content |\n")
		b.WriteString("|-------|----------|------------|--------|---------|\n")
		for _, item := range data.Curriculum {
			content := ""
			if item.HasContent() {
				content = "yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				escapeCell(item.Topic), escapeCell(item.Category), item.Difficulty, item.Status, content)
		}
		b.WriteString("\n")
	}

	if len(data.Todos) > 0 {
		b.WriteString("## Todos\n\n")
		for _, todo := range data.Todos {
			box := " "
			if todo.Status != models.TodoStatusPending {
				box = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s (%s)\n", box, todo.Task, todo.Tag)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RepairDuplicateTopics keeps the first row of every topic and drops the rest.
// Topic is the update key, so duplicates left by concurrent writers or
// careless imports make status changes hit several rows.
func (s *CachedStore) RepairDuplicateTopics(ctx context.Context) (int, error) {
	items, err := s.FreshCurriculum(ctx)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(items))
	kept := make([]models.CurriculumItem, 0, len(items))
	for _, item := range items {
		if seen[item.Topic] {
			continue
		}
		seen[item.Topic] = true
		kept = append(kept, item)
	}

	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.ReplaceCurriculum(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
