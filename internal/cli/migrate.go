package cli

import (
	"fmt"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/connection"

	"github.com/spf13/cobra"
)

func (a *App) migrateCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().IntVar(&steps, "steps", 0, "number of migrations to apply or roll back (0 = all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := connection.MigrateUp(a.migrationsDir, a.cfg.DatabaseURL(), steps); err != nil {
				return fmt.Errorf("migration up failed: %w", err)
			}
			fmt.Fprintln(a.out, "migration up completed")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Example: `  innoutctl migrate down --steps=1
  innoutctl migrate down`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := connection.MigrateDown(a.migrationsDir, a.cfg.DatabaseURL(), steps); err != nil {
				return fmt.Errorf("migration down failed: %w", err)
			}
			fmt.Fprintln(a.out, "migration down completed")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(_ *cobra.Command, _ []string) error {
			v, err := connection.CurrentMigration(a.migrationsDir, a.cfg.DatabaseURL())
			if err != nil {
				return err
			}
			if !v.Applied {
				fmt.Fprintln(a.out, "no migration applied")
				return nil
			}
			fmt.Fprintf(a.out, "version=%d dirty=%t\n", v.Version, v.Dirty)
			return nil
		},
	})

	return cmd
}
