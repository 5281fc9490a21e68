// ABOUTME: In-memory Backend used for tests and the "memory" backend setting
// ABOUTME: Supports injected read/write failures and counts backend calls
package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/harper/momprep/internal/models"
)

// MemoryBackend keeps both tables in process memory
type MemoryBackend struct {
	mu         sync.Mutex
	curriculum []models.CurriculumItem
	todos      []models.TodoItem

	// ReadErr, when set, is returned from every read
	ReadErr error
	// WriteErr, when set, is returned from every write
	WriteErr error

	reads  map[Table]int
	writes map[Table]int
}

// NewMemoryBackend creates a backend seeded with the given rows
func NewMemoryBackend(curriculum []models.CurriculumItem, todos []models.TodoItem) *MemoryBackend {
	return &MemoryBackend{
		curriculum: slices.Clone(curriculum),
		todos:      slices.Clone(todos),
		reads:      make(map[Table]int),
		writes:     make(map[Table]int),
	}
}

func (m *MemoryBackend) Curriculum(ctx context.Context) ([]models.CurriculumItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads[TableCurriculum]++
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return slices.Clone(m.curriculum), nil
}

func (m *MemoryBackend) ReplaceCurriculum(ctx context.Context, items []models.CurriculumItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes[TableCurriculum]++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.curriculum = slices.Clone(items)
	return nil
}

func (m *MemoryBackend) Todos(ctx context.Context) ([]models.TodoItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads[TableTodos]++
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return slices.Clone(m.todos), nil
}

func (m *MemoryBackend) ReplaceTodos(ctx context.Context, items []models.TodoItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes[TableTodos]++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.todos = slices.Clone(items)
	return nil
}

// Reads returns how many times the table was read from this backend
func (m *MemoryBackend) Reads(table Table) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads[table]
}

// Writes returns how many times the table was written to this backend
func (m *MemoryBackend) Writes(table Table) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[table]
}

func (m *MemoryBackend) Close() error {
	return nil
}
