// ABOUTME: CachedStore serves table snapshots within a freshness window
// ABOUTME: Writes go straight to the backend and invalidate only the written table
package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/harper/momprep/internal/logging"
	"github.com/harper/momprep/internal/models"
)

// DefaultTTL is how long a table snapshot is served before it is re-read
const DefaultTTL = 60 * time.Second

type snapshot[T any] struct {
	rows    []T
	fetched time.Time
	valid   bool
}

func (s *snapshot[T]) fresh(now time.Time, ttl time.Duration) bool {
	return s.valid && now.Sub(s.fetched) < ttl
}

func (s *snapshot[T]) set(rows []T, now time.Time) {
	s.rows = slices.Clone(rows)
	s.fetched = now
	s.valid = true
}

func (s *snapshot[T]) clear() {
	*s = snapshot[T]{}
}

// CachedStore wraps a Backend with per-table snapshots.
//
// Reads through Curriculum and Todos may be up to ttl old. FreshCurriculum and
// FreshTodos always hit the backend and are used before read-modify-write cycles.
type CachedStore struct {
	backend Backend
	ttl     time.Duration
	now     func() time.Time
	log     zerolog.Logger

	mu         sync.Mutex
	curriculum snapshot[models.CurriculumItem]
	todos      snapshot[models.TodoItem]
}

// Option configures a CachedStore
type Option func(*CachedStore)

// WithTTL overrides the freshness window
func WithTTL(ttl time.Duration) Option {
	return func(s *CachedStore) { s.ttl = ttl }
}

// WithClock overrides the time source (for testing)
func WithClock(now func() time.Time) Option {
	return func(s *CachedStore) { s.now = now }
}

// NewCachedStore wraps backend with snapshot caching
func NewCachedStore(backend Backend, opts ...Option) *CachedStore {
	s := &CachedStore{
		backend: backend,
		ttl:     DefaultTTL,
		now:     time.Now,
		log:     logging.Component("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Curriculum returns the Curriculum table, from the snapshot when fresh
func (s *CachedStore) Curriculum(ctx context.Context) ([]models.CurriculumItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.curriculum.fresh(now, s.ttl) {
		return slices.Clone(s.curriculum.rows), nil
	}

	items, err := s.backend.Curriculum(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, TableCurriculum, err)
	}
	s.curriculum.set(items, now)
	s.log.Debug().Int("rows", len(items)).Msg("curriculum snapshot refreshed")
	return items, nil
}

// FreshCurriculum reads the Curriculum table from the backend, bypassing the snapshot
func (s *CachedStore) FreshCurriculum(ctx context.Context) ([]models.CurriculumItem, error) {
	items, err := s.backend.Curriculum(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, TableCurriculum, err)
	}
	return items, nil
}

// ReplaceCurriculum overwrites the Curriculum table and drops its snapshot
func (s *CachedStore) ReplaceCurriculum(ctx context.Context, items []models.CurriculumItem) error {
	err := s.backend.ReplaceCurriculum(ctx, items)
	s.Invalidate(TableCurriculum)
	if err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrWrite, TableCurriculum, err)
	}
	return nil
}

// Todos returns the Todos table, from the snapshot when fresh
func (s *CachedStore) Todos(ctx context.Context) ([]models.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.todos.fresh(now, s.ttl) {
		return slices.Clone(s.todos.rows), nil
	}

	items, err := s.backend.Todos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, TableTodos, err)
	}
	s.todos.set(items, now)
	s.log.Debug().Int("rows", len(items)).Msg("todos snapshot refreshed")
	return items, nil
}

// FreshTodos reads the Todos table from the backend, bypassing the snapshot
func (s *CachedStore) FreshTodos(ctx context.Context) ([]models.TodoItem, error) {
	items, err := s.backend.Todos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, TableTodos, err)
	}
	return items, nil
}

// ReplaceTodos overwrites the Todos table and drops its snapshot
func (s *CachedStore) ReplaceTodos(ctx context.Context, items []models.TodoItem) error {
	err := s.backend.ReplaceTodos(ctx, items)
	s.Invalidate(TableTodos)
	if err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrWrite, TableTodos, err)
	}
	return nil
}

// Invalidate drops the snapshot of one table
func (s *CachedStore) Invalidate(table Table) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch table {
	case TableCurriculum:
		s.curriculum.clear()
	case TableTodos:
		s.todos.clear()
	}
}

// Backend returns the wrapped backend
func (s *CachedStore) Backend() Backend {
	return s.backend
}

// Close closes the wrapped backend
func (s *CachedStore) Close() error {
	return s.backend.Close()
}
