// ABOUTME: Lifecycle applies status changes and content write-back to curriculum topics
// ABOUTME: Re-reads the table before every write; writes replace the whole table
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harper/momprep/internal/logging"
	"github.com/harper/momprep/internal/models"
)

var (
	// ErrTopicNotFound is returned when no curriculum row has the given topic
	ErrTopicNotFound = errors.New("topic not found")
	// ErrInvalidTransition is returned when a status change is not allowed
	ErrInvalidTransition = errors.New("invalid status transition")
)

// CurriculumStore reads and overwrites the Curriculum table.
// Curriculum may serve a cached snapshot; FreshCurriculum must not.
type CurriculumStore interface {
	Curriculum(ctx context.Context) ([]models.CurriculumItem, error)
	FreshCurriculum(ctx context.Context) ([]models.CurriculumItem, error)
	ReplaceCurriculum(ctx context.Context, items []models.CurriculumItem) error
}

// Lifecycle mutates curriculum rows by topic.
//
// Updates are read-modify-write without a version check: a concurrent writer
// between the read and the write is silently overwritten.
type Lifecycle struct {
	store CurriculumStore
	log   zerolog.Logger
}

// NewLifecycle creates a lifecycle manager over store
func NewLifecycle(store CurriculumStore) *Lifecycle {
	return &Lifecycle{store: store, log: logging.Component("lifecycle")}
}

// SetStatus moves every row with the given topic to status to and persists the table
func (l *Lifecycle) SetStatus(ctx context.Context, topic string, to models.Status) error {
	return l.update(ctx, topic, func(item *models.CurriculumItem) error {
		if !item.Status.CanTransition(to) {
			return fmt.Errorf("%w: %s -> %s for %q", ErrInvalidTransition, item.Status, to, topic)
		}
		item.Status = to
		return nil
	})
}

// SaveContent stores generated content on every row with the given topic
func (l *Lifecycle) SaveContent(ctx context.Context, topic, content string) error {
	return l.update(ctx, topic, func(item *models.CurriculumItem) error {
		item.ContentCache = content
		return nil
	})
}

func (l *Lifecycle) update(ctx context.Context, topic string, apply func(*models.CurriculumItem) error) error {
	items, err := l.store.FreshCurriculum(ctx)
	if err != nil {
		return err
	}

	matched := 0
	for i := range items {
		if items[i].Topic != topic {
			continue
		}
		if err := apply(&items[i]); err != nil {
			return err
		}
		matched++
	}
	if matched == 0 {
		return fmt.Errorf("%w: %q", ErrTopicNotFound, topic)
	}

	if err := l.store.ReplaceCurriculum(ctx, items); err != nil {
		return err
	}

	l.log.Info().Str("topic", topic).Int("rows", matched).Msg("curriculum updated")
	return nil
}
