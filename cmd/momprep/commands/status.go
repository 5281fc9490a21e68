// ABOUTME: CLI commands to move a topic through its lifecycle
// ABOUTME: done marks a topic Done; revise keeps it queued as Revision
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/models"
)

// NewDoneCmd creates the done command
func NewDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <topic>",
		Short: "Mark a topic as done",
		Long: `Mark a topic as Done. Done topics are never selected again.

Example:
  momprep done "Idempotency Keys"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(cmd, args[0], models.StatusDone)
		},
	}
}

// NewReviseCmd creates the revise command
func NewReviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revise <topic>",
		Short: "Mark a topic for revision",
		Long: `Mark a topic for Revision so it stays in the queue.

Done topics cannot be moved back to Revision.

Example:
  momprep revise "Vector Databases"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(cmd, args[0], models.StatusRevision)
		},
	}
}

func runSetStatus(cmd *cobra.Command, topic string, to models.Status) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if to == models.StatusDone {
		err = a.coach.MarkDone(ctx, topic)
	} else {
		err = a.coach.MarkRevision(ctx, topic)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, map[string]any{"topic": topic, "status": to})
	}
	if to == models.StatusDone {
		info(out, "Marked %q as Done", topic)
	} else {
		info(out, "Marked %q for revision", topic)
	}
	return nil
}
