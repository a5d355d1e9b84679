package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Migrate flags
	dryRun bool
)

// migrateCmd applies pending schema migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply pending database migrations to the configured database.

Examples:
  catalog migrate             # Apply all pending migrations
  catalog migrate --dry-run   # List pending migrations without applying them`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		if dryRun {
			pending, err := app.Migrator.GetPendingMigrations()
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Fprintln(out, "No pending migrations.")
				return nil
			}
			for _, m := range pending {
				fmt.Fprintf(out, "%s  %s\n", m.Version, m.Name)
			}
			return nil
		}

		if err := app.Migrator.Migrate(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Migrations completed successfully!")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show pending migrations without applying them")
	rootCmd.AddCommand(migrateCmd)
}
