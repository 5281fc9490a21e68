// ABOUTME: Table store abstraction for the Curriculum and Todos tables
// ABOUTME: Backends replace whole tables on write; last writer wins
package storage

import (
	"context"
	"errors"

	"github.com/harper/momprep/internal/models"
)

var (
	// ErrUnavailable is returned when a table cannot be read from the backend
	ErrUnavailable = errors.New("store unavailable")
	// ErrWrite is returned when a table cannot be written back
	ErrWrite = errors.New("store write failed")
)

// Table names a table in the store
type Table string

const (
	TableCurriculum Table = "Curriculum"
	TableTodos      Table = "Todos"
)

// Backend reads and overwrites whole tables.
//
// Replace* calls overwrite the entire table with the given rows. There is no
// version check, so concurrent writers silently overwrite each other.
type Backend interface {
	Curriculum(ctx context.Context) ([]models.CurriculumItem, error)
	ReplaceCurriculum(ctx context.Context, items []models.CurriculumItem) error
	Todos(ctx context.Context) ([]models.TodoItem, error)
	ReplaceTodos(ctx context.Context, items []models.TodoItem) error
	Close() error
}
