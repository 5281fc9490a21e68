// ABOUTME: Seed command loads the embedded starter curriculum
// ABOUTME: Refuses to overwrite an existing curriculum unless --force is given
package commands

import (
	"embed"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/momprep/internal/models"
)

//go:embed seed/curriculum.yaml
var seedFS embed.FS

// starterCurriculum decodes the embedded curriculum
func starterCurriculum() ([]models.CurriculumItem, error) {
	data, err := seedFS.ReadFile("seed/curriculum.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded curriculum: %w", err)
	}
	var items []models.CurriculumItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding embedded curriculum: %w", err)
	}
	return items, nil
}

// NewSeedCmd creates the seed command
func NewSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the starter curriculum",
		Long: `Load a starter curriculum of AI, payments, system design and
leadership topics into an empty store.

An existing curriculum is only replaced with --force. Tasks are not
touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := starterCurriculum()
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

			existing, err := a.store.FreshCurriculum(ctx)
			if err != nil {
				return err
			}
			if len(existing) > 0 && !force {
				fmt.Fprintf(out, "Curriculum already has %d topic(s)\n", len(existing))
				fmt.Fprintln(out, "Run with --force to replace it")
				return nil
			}

			if err := a.store.ReplaceCurriculum(ctx, items); err != nil {
				return err
			}
			info(out, "Seeded %d topic(s)", len(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing curriculum")
	return cmd
}
