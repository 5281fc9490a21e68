// ABOUTME: CLI commands to export and import both tables
// ABOUTME: Exports as YAML, JSON or Markdown; imports YAML or JSON exports
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/storage"
)

var exportOutput string

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export curriculum and tasks",
		Long: `Export the Curriculum and Todos tables.

The global --format flag picks the encoding: yaml (default), json or
markdown. YAML and JSON exports can be restored with 'momprep import'.

Examples:
  momprep export > backup.yaml
  momprep export --output backup.json --format json
  momprep export --format markdown`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	data, err := a.store.Export(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOutput, err)
		}
		defer f.Close()
		w = f
	}

	switch outputFormat {
	case "json":
		err = printJSON(w, data)
	case "markdown", "md":
		err = storage.WriteMarkdown(w, data)
	case "yaml", "auto", "text":
		err = storage.WriteYAML(w, data)
	default:
		return fmt.Errorf("unsupported export format %q (want yaml, json or markdown)", outputFormat)
	}
	if err != nil {
		return err
	}

	if exportOutput != "" {
		info(cmd.ErrOrStderr(), "Exported %d topic(s) and %d task(s) to %s", len(data.Curriculum), len(data.Todos), exportOutput)
	}
	return nil
}

// NewImportCmd creates the import command
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore curriculum and tasks from an export",
		Long: `Restore both tables from a YAML or JSON export.

Both tables are overwritten with the export's contents.

Example:
  momprep import backup.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	// JSON is valid YAML, so one decoder reads both
	data, err := storage.ReadYAML(f)
	if err != nil {
		return err
	}

	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Import(cmd.Context(), data); err != nil {
		return fmt.Errorf("importing: %w", err)
	}

	info(cmd.OutOrStdout(), "Imported %d topic(s) and %d task(s)", len(data.Curriculum), len(data.Todos))
	return nil
}
