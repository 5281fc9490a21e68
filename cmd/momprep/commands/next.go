// ABOUTME: CLI command to pick the next topic for the current mode
// ABOUTME: Shows stored content when present; never calls the LLM
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/core"
	"github.com/harper/momprep/internal/models"
)

// EmptyQueueMessage is shown when every topic is Done
const EmptyQueueMessage = "You finished your queue!"

var nextMode string

// NewNextCmd creates the next command
func NewNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Pick a topic that fits the time you have",
		Long: `Pick a random New or Revision topic whose difficulty matches the mode.

When nothing matches the mode, any remaining topic is picked instead.
Stored content is shown; run 'momprep generate' to create it otherwise.

Examples:
  momprep next
  momprep next --mode laptop
  momprep next --mode naptime --format json`,
		Args: cobra.NoArgs,
		RunE: runNext,
	}

	cmd.Flags().StringVarP(&nextMode, "mode", "m", string(models.ModeBreastfeeding), "Mode: breastfeeding, naptime or laptop")

	return cmd
}

type nextResult struct {
	Found   bool                   `json:"found"`
	Message string                 `json:"message,omitempty"`
	Mode    models.Mode            `json:"mode"`
	Budget  models.Budget          `json:"budget"`
	Item    *models.CurriculumItem `json:"item,omitempty"`
}

func runNext(cmd *cobra.Command, args []string) error {
	mode, err := models.ParseMode(nextMode)
	if err != nil {
		return err
	}

	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	item, ok, err := a.coach.Next(ctx, mode.Budget())
	if err != nil {
		return fmt.Errorf("selecting topic: %w", err)
	}

	if jsonOutput() {
		result := nextResult{Found: ok, Mode: mode, Budget: mode.Budget()}
		if ok {
			result.Item = &item
		} else {
			result.Message = EmptyQueueMessage
		}
		return printJSON(out, result)
	}

	if !ok {
		fmt.Fprintln(out, EmptyQueueMessage)
		return nil
	}

	printTopic(out, item)
	if item.HasContent() {
		fmt.Fprint(out, renderMarkdown(out, item.ContentCache))
	} else {
		info(out, "No pre-generated content. Run: momprep generate %q --mode %s", item.Topic, mode)
	}
	return nil
}

// printTopic prints the topic heading and its metadata
func printTopic(w io.Writer, item models.CurriculumItem) {
	fmt.Fprintln(w, heading(w, item.Topic))
	fmt.Fprintln(w, muted(w, fmt.Sprintf("%s · %s · %s", item.Category, item.Difficulty, item.Status)))
	fmt.Fprintln(w)
}

// resolveBudget uses the mode flag when it was set and the topic's own
// difficulty otherwise
func resolveBudget(cmd *cobra.Command, modeFlag string, item models.CurriculumItem) (models.Budget, error) {
	if !cmd.Flags().Changed("mode") {
		return item.Difficulty, nil
	}
	mode, err := models.ParseMode(modeFlag)
	if err != nil {
		return "", err
	}
	return mode.Budget(), nil
}

// isNotGenerated reports whether err means a topic has no stored content
func isNotGenerated(err error) bool {
	return errors.Is(err, core.ErrNotGenerated)
}
