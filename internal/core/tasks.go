// ABOUTME: Task list management: appends pending tasks to the Todos table
package core

import (
	"context"
	"slices"

	"github.com/harper/momprep/internal/models"
)

// TodoStore reads and overwrites the Todos table
type TodoStore interface {
	Todos(ctx context.Context) ([]models.TodoItem, error)
	FreshTodos(ctx context.Context) ([]models.TodoItem, error)
	ReplaceTodos(ctx context.Context, items []models.TodoItem) error
}

// AddTask returns existing with a pending task appended. existing is not modified.
func AddTask(existing []models.TodoItem, task string, tag models.Tag) []models.TodoItem {
	updated := slices.Clone(existing)
	return append(updated, models.TodoItem{
		Task:   task,
		Tag:    tag,
		Status: models.TodoStatusPending,
	})
}

// TaskList appends to and lists the Todos table
type TaskList struct {
	store TodoStore
}

// NewTaskList creates a task list over store
func NewTaskList(store TodoStore) *TaskList {
	return &TaskList{store: store}
}

// Add appends a pending task and writes the whole table back
func (t *TaskList) Add(ctx context.Context, task string, tag models.Tag) ([]models.TodoItem, error) {
	existing, err := t.store.FreshTodos(ctx)
	if err != nil {
		return nil, err
	}

	updated := AddTask(existing, task, tag)
	if err := t.store.ReplaceTodos(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// List returns the Todos table, possibly from a cached snapshot
func (t *TaskList) List(ctx context.Context) ([]models.TodoItem, error) {
	return t.store.Todos(ctx)
}
