// ABOUTME: Table reads and full-table overwrites for SQLite
// ABOUTME: Each overwrite runs in one transaction: delete all rows, insert the new set
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harper/momprep/internal/models"
)

// Curriculum returns every curriculum row in table order
func (s *Store) Curriculum(ctx context.Context) ([]models.CurriculumItem, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT topic, category, difficulty, status, content_cache
		FROM curriculum
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query curriculum: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []models.CurriculumItem{}
	for rows.Next() {
		var (
			item    models.CurriculumItem
			content sql.NullString
		)
		if err := rows.Scan(&item.Topic, &item.Category, &item.Difficulty, &item.Status, &content); err != nil {
			return nil, fmt.Errorf("failed to scan curriculum row: %w", err)
		}
		item.ContentCache = content.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// ReplaceCurriculum overwrites the curriculum table
func (s *Store) ReplaceCurriculum(ctx context.Context, items []models.CurriculumItem) error {
	return s.replace(ctx, "curriculum", len(items), `
		INSERT INTO curriculum (position, topic, category, difficulty, status, content_cache)
		VALUES (?, ?, ?, ?, ?, ?)
	`, func(stmt *sql.Stmt, i int) error {
		item := items[i]
		_, err := stmt.ExecContext(ctx, i, item.Topic, item.Category, string(item.Difficulty),
			string(item.Status), nullString(item.ContentCache))
		return err
	})
}

// Todos returns every todo row in table order
func (s *Store) Todos(ctx context.Context) ([]models.TodoItem, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT task, tag, status
		FROM todos
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []models.TodoItem{}
	for rows.Next() {
		var item models.TodoItem
		if err := rows.Scan(&item.Task, &item.Tag, &item.Status); err != nil {
			return nil, fmt.Errorf("failed to scan todo row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ReplaceTodos overwrites the todos table
func (s *Store) ReplaceTodos(ctx context.Context, items []models.TodoItem) error {
	return s.replace(ctx, "todos", len(items), `
		INSERT INTO todos (position, task, tag, status)
		VALUES (?, ?, ?, ?)
	`, func(stmt *sql.Stmt, i int) error {
		item := items[i]
		_, err := stmt.ExecContext(ctx, i, item.Task, string(item.Tag), item.Status)
		return err
	})
}

func (s *Store) replace(ctx context.Context, table string, n int, insert string, exec func(*sql.Stmt, int) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// table is one of two constants, never user input
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := 0; i < n; i++ {
		if err := exec(stmt, i); err != nil {
			return fmt.Errorf("failed to insert %s row %d: %w", table, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
