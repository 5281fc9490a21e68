// ABOUTME: Sync commands for Charm cloud synchronization
// ABOUTME: Provides status, manual sync, keys, wipe and duplicate-topic repair
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/charm"
	"github.com/harper/momprep/internal/storage"
)

// NewSyncCmd creates the sync command group
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage Charm cloud synchronization",
		Long: `Manage synchronization with Charm cloud.

With MOMPREP_BACKEND=charm the Curriculum and Todos tables live in
Charm KV and sync across devices linked to the same Charm account via
SSH keys. The default SQLite backend keeps everything local.`,
	}

	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncNowCmd())
	cmd.AddCommand(newSyncRepairCmd())
	cmd.AddCommand(newSyncWipeCmd())
	cmd.AddCommand(newSyncKeysCmd())

	return cmd
}

// openCharm opens the store and returns its Charm client
func openCharm() (*app, *charm.Client, error) {
	a, err := openApp(false)
	if err != nil {
		return nil, nil, err
	}
	client, ok := a.store.Backend().(*charm.Client)
	if !ok {
		a.Close()
		return nil, nil, fmt.Errorf("sync needs the charm backend (set MOMPREP_BACKEND=charm, current: %s)", a.cfg.Backend)
	}
	return a, client, nil
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and connection info",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			c, err := currentConfig()
			if err != nil {
				return err
			}
			if c.Backend != storage.BackendCharm {
				fmt.Fprintf(out, "Backend: %s (not synced)\n", c.Backend)
				return nil
			}

			a, client, err := openCharm()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}
			defer a.Close()

			id, err := client.ID()
			if err != nil {
				fmt.Fprintln(out, "Status: Not connected")
				fmt.Fprintln(out, "Run 'momprep sync keys' to check your SSH keys")
				return nil
			}

			fmt.Fprintln(out, "Status: Connected")
			fmt.Fprintf(out, "User ID: %s\n", id)
			fmt.Fprintf(out, "Host: %s\n", client.Host())
			fmt.Fprintf(out, "Auto sync: %t\n", c.AutoSync)

			return nil
		},
	}
}

func newSyncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Force immediate sync with Charm cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, client, err := openCharm()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			info(out, "Syncing...")
			if err := client.Sync(); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}
			a.store.Invalidate(storage.TableCurriculum)
			a.store.Invalidate(storage.TableTodos)

			info(out, "Sync complete")
			return nil
		},
	}
}

func newSyncRepairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Remove duplicate curriculum topics",
		Long: `Repair duplicate topics that can appear after concurrent edits.

Status changes update every row with a matching topic, so duplicate
topics left by concurrent writers or repeated imports are collapsed to
their first row. Works with every backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			removed, err := a.store.RepairDuplicateTopics(cmd.Context())
			if err != nil {
				return fmt.Errorf("repair failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if removed > 0 {
				fmt.Fprintf(out, "Repaired: removed %d duplicate topic row(s)\n", removed)
			} else {
				fmt.Fprintln(out, "No repair needed: every topic is unique")
			}

			return nil
		},
	}
}

func newSyncWipeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Wipe all local data (nuclear option)",
		Long: `Completely wipe all local Charm data.

WARNING: This deletes all locally cached data. Your cloud data
remains intact and will be re-synced on next access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !confirm {
				fmt.Fprintln(out, "This will wipe ALL local data!")
				fmt.Fprintln(out, "Run with --confirm to proceed")
				return nil
			}

			a, client, err := openCharm()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}
			defer a.Close()

			if err := client.Reset(); err != nil {
				return fmt.Errorf("failed to wipe data: %w", err)
			}

			fmt.Fprintln(out, "Local data wiped successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the wipe operation")

	return cmd
}

func newSyncKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List authorized SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, client, err := openCharm()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}
			defer a.Close()

			keys, err := client.AuthorizedKeys()
			if err != nil {
				return fmt.Errorf("failed to get authorized keys: %w", err)
			}

			out := cmd.OutOrStdout()
			if keys == "" {
				fmt.Fprintln(out, "No authorized keys found")
				return nil
			}

			fmt.Fprintln(out, "Authorized SSH keys:")
			fmt.Fprintln(out, keys)

			return nil
		},
	}
}
