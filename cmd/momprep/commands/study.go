// ABOUTME: Interactive study loop: pick a mode, read a nugget, ask, mark progress
// ABOUTME: Prompts use huh forms and need a terminal on stdin
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/harper/momprep/internal/core"
	"github.com/harper/momprep/internal/models"
)

type studyAction int

const (
	actionAsk studyAction = iota
	actionDone
	actionRevise
	actionSkip
	actionQuit
)

// studyPrompter asks the user for each decision in the study loop
type studyPrompter interface {
	ChooseMode() (models.Mode, error)
	ConfirmGenerate(topic string) (bool, error)
	ChooseAction(topic string) (studyAction, error)
	Question() (string, error)
}

// NewStudyCmd creates the study command
func NewStudyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Interactive study session",
		Long: `Start an interactive study session.

Choose what you are doing right now, read a nugget sized to it, ask
follow-up questions about it and mark it done or for revision. Content
is only generated when you ask for it.`,
		Args: cobra.NoArgs,
		RunE: runStudy,
	}
}

func runStudy(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("study needs an interactive terminal; use 'momprep next' and 'momprep generate' instead")
	}

	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintln(cmd.OutOrStdout(), heading(cmd.OutOrStdout(), "🍼 MomPrep: Interview Ready"))

	err = studyLoop(cmd.Context(), cmd.OutOrStdout(), a.coach, huhPrompter{})
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

// studyLoop runs topics until the queue is empty or the user quits
func studyLoop(ctx context.Context, out io.Writer, coach *core.Coach, p studyPrompter) error {
	mode, err := p.ChooseMode()
	if err != nil {
		return err
	}
	budget := mode.Budget()
	session := core.NewSession()

	for {
		item, ok, err := coach.Next(ctx, budget)
		if err != nil {
			return fmt.Errorf("selecting topic: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, EmptyQueueMessage)
			return nil
		}

		fmt.Fprintln(out)
		printTopic(out, item)

		text, _, err := coach.Content(ctx, session, item, budget, false)
		if isNotGenerated(err) {
			generate, perr := p.ConfirmGenerate(item.Topic)
			if perr != nil {
				return perr
			}
			if generate {
				text, _, err = coach.Content(ctx, session, item, budget, true)
			}
		}
		switch {
		case err == nil:
			fmt.Fprint(out, renderMarkdown(out, text))
		case isNotGenerated(err):
			fmt.Fprintln(out, muted(out, "No pre-generated content."))
		default:
			fmt.Fprintf(out, "Generation failed (you can retry): %v\n", err)
		}

		next, err := topicActions(ctx, out, coach, session, item, p)
		if err != nil || !next {
			return err
		}
	}
}

// topicActions handles actions on one topic. It returns false when the user quits.
func topicActions(ctx context.Context, out io.Writer, coach *core.Coach, session *core.Session, item models.CurriculumItem, p studyPrompter) (bool, error) {
	for {
		action, err := p.ChooseAction(item.Topic)
		if err != nil {
			return false, err
		}

		switch action {
		case actionAsk:
			question, err := p.Question()
			if err != nil {
				return false, err
			}
			if question == "" {
				continue
			}
			reply, err := coach.Ask(ctx, session, question)
			if err != nil {
				fmt.Fprintf(out, "Chat failed (you can retry): %v\n", err)
				continue
			}
			fmt.Fprint(out, renderMarkdown(out, reply))

		case actionDone:
			if err := coach.MarkDone(ctx, item.Topic); err != nil {
				fmt.Fprintf(out, "Could not save: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Marked done. Great job!")
			return true, nil

		case actionRevise:
			if err := coach.MarkRevision(ctx, item.Topic); err != nil {
				fmt.Fprintf(out, "Could not save: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Queued for revision.")
			return true, nil

		case actionSkip:
			return true, nil

		default:
			return false, nil
		}
	}
}

type huhPrompter struct{}

func (huhPrompter) ChooseMode() (models.Mode, error) {
	mode := models.ModeBreastfeeding
	options := make([]huh.Option[models.Mode], 0, len(models.Modes))
	for _, m := range models.Modes {
		options = append(options, huh.NewOption(m.Label(), m))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mode]().
				Title("What are you doing right now?").
				Options(options...).
				Value(&mode),
		),
	).Run()
	return mode, err
}

func (huhPrompter) ConfirmGenerate(topic string) (bool, error) {
	generate := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("No pre-generated content for %q. Generate a nugget?", topic)).
				Affirmative("Generate").
				Negative("Skip").
				Value(&generate),
		),
	).Run()
	return generate, err
}

func (huhPrompter) ChooseAction(topic string) (studyAction, error) {
	action := actionAsk
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[studyAction]().
				Title(topic).
				Options(
					huh.NewOption("Ask a follow-up question", actionAsk),
					huh.NewOption("✅ Mark done", actionDone),
					huh.NewOption("🔁 Mark for revision", actionRevise),
					huh.NewOption("Next topic", actionSkip),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&action),
		),
	).Run()
	return action, err
}

func (huhPrompter) Question() (string, error) {
	var question string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ask about this topic").
				Placeholder("Explain this like I'm a senior engineer...").
				Value(&question),
		),
	).Run()
	return question, err
}
