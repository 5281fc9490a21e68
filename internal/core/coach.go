// ABOUTME: Coach wires selection, lifecycle, content, chat and tasks over one store
// ABOUTME: Entry point used by the CLI commands and the MCP handlers
package core

import (
	"context"
	"fmt"

	"github.com/harper/momprep/internal/models"
)

// Store is the full table store the coach works against
type Store interface {
	CurriculumStore
	TodoStore
}

// CoachConfig configures a Coach
type CoachConfig struct {
	Store Store
	// ContentModel generates nuggets; ChatModel answers follow-ups. Either may be nil.
	ContentModel Generator
	ChatModel    Generator
	// Rand overrides the selection random source
	Rand Rand
	// PersistContent writes generated nuggets back to the curriculum table
	PersistContent bool
}

// Coach is the study engine behind every surface
type Coach struct {
	store     Store
	selector  *Selector
	lifecycle *Lifecycle
	content   *ContentResolver
	chat      *Chat
	tasks     *TaskList
}

// NewCoach creates a coach from cfg
func NewCoach(cfg CoachConfig) *Coach {
	lifecycle := NewLifecycle(cfg.Store)

	var saver ContentSaver
	if cfg.PersistContent {
		saver = lifecycle
	}

	return &Coach{
		store:     cfg.Store,
		selector:  NewSelector(cfg.Rand),
		lifecycle: lifecycle,
		content:   NewContentResolver(cfg.ContentModel, saver),
		chat:      NewChat(cfg.ChatModel),
		tasks:     NewTaskList(cfg.Store),
	}
}

// Next selects a topic for budget from the curriculum snapshot.
// ok is false when the queue is empty.
func (c *Coach) Next(ctx context.Context, budget models.Budget) (item models.CurriculumItem, ok bool, err error) {
	items, err := c.store.Curriculum(ctx)
	if err != nil {
		return models.CurriculumItem{}, false, err
	}
	item, ok = c.selector.Select(items, budget)
	return item, ok, nil
}

// Queue returns the eligible topics from the curriculum snapshot
func (c *Coach) Queue(ctx context.Context) ([]models.CurriculumItem, error) {
	items, err := c.store.Curriculum(ctx)
	if err != nil {
		return nil, err
	}
	return Queue(items), nil
}

// Curriculum returns the whole curriculum snapshot
func (c *Coach) Curriculum(ctx context.Context) ([]models.CurriculumItem, error) {
	return c.store.Curriculum(ctx)
}

// Find returns the first curriculum row with the given topic
func (c *Coach) Find(ctx context.Context, topic string) (models.CurriculumItem, error) {
	items, err := c.store.Curriculum(ctx)
	if err != nil {
		return models.CurriculumItem{}, err
	}
	for _, item := range items {
		if item.Topic == topic {
			return item, nil
		}
	}
	return models.CurriculumItem{}, fmt.Errorf("%w: %q", ErrTopicNotFound, topic)
}

// Content resolves content for item, generating it only when trigger is set
func (c *Coach) Content(ctx context.Context, session *Session, item models.CurriculumItem, budget models.Budget, trigger bool) (string, bool, error) {
	return c.content.Resolve(ctx, session, item, budget, trigger)
}

// Generate looks up topic and resolves its content with generation enabled
func (c *Coach) Generate(ctx context.Context, session *Session, topic string, budget models.Budget) (string, bool, error) {
	item, err := c.Find(ctx, topic)
	if err != nil {
		return "", false, err
	}
	return c.content.Resolve(ctx, session, item, budget, true)
}

// MarkDone marks topic as done
func (c *Coach) MarkDone(ctx context.Context, topic string) error {
	return c.lifecycle.SetStatus(ctx, topic, models.StatusDone)
}

// MarkRevision queues topic for revision
func (c *Coach) MarkRevision(ctx context.Context, topic string) error {
	return c.lifecycle.SetStatus(ctx, topic, models.StatusRevision)
}

// Ask answers a follow-up question in the session
func (c *Coach) Ask(ctx context.Context, session *Session, message string) (string, error) {
	return c.chat.Ask(ctx, session, message)
}

// AddTask appends a pending task
func (c *Coach) AddTask(ctx context.Context, task string, tag models.Tag) ([]models.TodoItem, error) {
	return c.tasks.Add(ctx, task, tag)
}

// Tasks lists the task table
func (c *Coach) Tasks(ctx context.Context) ([]models.TodoItem, error) {
	return c.tasks.List(ctx)
}
