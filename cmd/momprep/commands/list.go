// ABOUTME: CLI command to list the study queue
// ABOUTME: Shows eligible topics, or the whole curriculum with --all
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/models"
)

var (
	listAll bool
)

// NewListCmd creates list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the study queue",
		Long: `List topics that can still be selected (New or Revision).

With --all, Done topics are included.

Examples:
  momprep list
  momprep list --all
  momprep list --format json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listAll, "all", false, "Show all topics (including Done)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var items []models.CurriculumItem
	if listAll {
		items, err = a.coach.Curriculum(ctx)
	} else {
		items, err = a.coach.Queue(ctx)
	}
	if err != nil {
		return fmt.Errorf("listing topics: %w", err)
	}

	if jsonOutput() {
		if items == nil {
			items = []models.CurriculumItem{}
		}
		return printJSON(out, items)
	}

	if len(items) == 0 {
		if !quiet {
			fmt.Fprintln(out, EmptyQueueMessage)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TOPIC\tCATEGORY\tDIFFICULTY\tSTATUS\tCONTENT\n")
	fmt.Fprintf(w, "-----\t--------\t----------\t------\t-------\n")
	for _, item := range items {
		content := "-"
		if item.HasContent() {
			content = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(item.Topic, 40),
			truncate(item.Category, 20),
			item.Difficulty,
			item.Status,
			content)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(out, "\nTotal: %d topic(s)\n", len(items))
	}
	return nil
}
