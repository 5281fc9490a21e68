// ABOUTME: ContentResolver decides between stored content and a fresh generation call
// ABOUTME: Also defines the nugget prompt and the coaching system instruction
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
	// ErrGeneration wraps any failure of the language model call; the action can be retried
	ErrGeneration = errors.New("content generation failed")
	// ErrNotGenerated is returned when a topic has no stored content and generation was not requested
	ErrNotGenerated = errors.New("no content generated yet")
)

// SystemInstruction frames every generation and chat call
const SystemInstruction = `You are a seasoned Software Engineer and a technical interview coach with a knack for explaining complex topics in a way that is easy to understand and engaging.
You are preparing a staff software engineer with background in payments platform who has been on a year long break and is a new mom with no sleep to interview for a new role in big tech and go back to work.`

// Generator produces text from a prompt and a system instruction
type Generator interface {
	Generate(ctx context.Context, prompt, system string) (string, error)
}

// ContentSaver persists generated content for a topic
type ContentSaver interface {
	SaveContent(ctx context.Context, topic, content string) error
}

// NuggetPrompt builds the generation prompt for a topic and time budget
func NuggetPrompt(topic string, budget models.Budget) string {
	return fmt.Sprintf(`Explain '%s'. Make it engaging and interesting.
Keep the read less than %s.
Structure:
1. The "What" (High level concept)
2. The "Why" (Why it matters in Payments/Platform)
3. How is it relevant to the interview process?
4. Feel free to add any deeper dive links or resources.`, topic, budget)
}

// ContentResolver returns content for a topic and loads it into the session
type ContentResolver struct {
	gen   Generator
	saver ContentSaver
	log   zerolog.Logger
}

// NewContentResolver creates a resolver. saver may be nil, in which case
// generated content lives only in the session.
func NewContentResolver(gen Generator, saver ContentSaver) *ContentResolver {
	return &ContentResolver{gen: gen, saver: saver, log: logging.Component("content")}
}

// Resolve returns stored content when present. Otherwise it generates content
// only when trigger is set, and reports ErrNotGenerated when it is not.
// generated reports whether the generator was called.
func (r *ContentResolver) Resolve(ctx context.Context, session *Session, item models.CurriculumItem, budget models.Budget, trigger bool) (text string, generated bool, err error) {
	if item.HasContent() {
		session.SetCurrentContent(item.Topic, item.ContentCache)
		return item.ContentCache, false, nil
	}

	if !trigger {
		return "", false, ErrNotGenerated
	}
	if r.gen == nil {
		return "", false, fmt.Errorf("%w: no language model configured", ErrGeneration)
	}

	text, err = r.gen.Generate(ctx, NuggetPrompt(item.Topic, budget), SystemInstruction)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	session.SetCurrentContent(item.Topic, text)

	if r.saver != nil {
		if err := r.saver.SaveContent(ctx, item.Topic, text); err != nil {
			r.log.Warn().Err(err).Str("topic", item.Topic).Msg("content write-back failed")
		}
	}

	return text, true, nil
}
