// ABOUTME: CLI command to produce a study nugget for a topic
// ABOUTME: Stored content is reused; the LLM is only called when none exists
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/core"
)

var (
	generateMode string
	generateSave bool
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate a study nugget for a topic",
		Long: `Generate a study nugget for a topic with the content model.

If the topic already has stored content it is shown instead and the
LLM is not called. The nugget is sized to the mode's budget, or to the
topic's own difficulty when no mode is given. With --save the result is
written back to the curriculum so later reads reuse it.

Examples:
  momprep generate "Idempotency Keys"
  momprep generate "Sagas" --mode laptop --save`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&generateMode, "mode", "m", "", "Mode: breastfeeding, naptime or laptop")
	cmd.Flags().BoolVar(&generateSave, "save", false, "Write the generated nugget back to the curriculum")

	return cmd
}

type generateResult struct {
	Topic     string `json:"topic"`
	Budget    string `json:"budget"`
	Generated bool   `json:"generated"`
	Content   string `json:"content"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	a, err := openApp(generateSave)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	item, err := a.coach.Find(ctx, args[0])
	if err != nil {
		return err
	}

	budget, err := resolveBudget(cmd, generateMode, item)
	if err != nil {
		return err
	}

	text, generated, err := a.coach.Content(ctx, core.NewSession(), item, budget, true)
	if err != nil {
		return fmt.Errorf("generating content (you can retry): %w", err)
	}

	if jsonOutput() {
		return printJSON(out, generateResult{
			Topic:     item.Topic,
			Budget:    string(budget),
			Generated: generated,
			Content:   text,
		})
	}

	printTopic(out, item)
	fmt.Fprint(out, renderMarkdown(out, text))
	if !generated {
		info(out, "%s", muted(out, "(stored content)"))
	}
	return nil
}
