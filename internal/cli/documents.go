package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) documentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Employee paperwork maintenance",
	}

	var alerts bool
	recompute := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute every consolidated document status",
		Long: `Recompute the consolidated paperwork status of every employee.

Statuses drift as days pass; the worker does this on a timer, this command
does it once. With --alerts it also queues expiry alerts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServices(cmd.Context(), func(s *Services) error {
				result, err := s.Documents.RecomputeAll(cmd.Context())
				if err != nil {
					return fmt.Errorf("recompute failed: %w", err)
				}
				fmt.Fprintf(a.out, "processed=%d changed=%d failed=%d\n", result.Processed, result.Changed, result.Failed)

				if !alerts {
					return nil
				}
				queued, err := s.Documents.QueueExpiryAlerts(cmd.Context())
				if err != nil {
					return fmt.Errorf("queue alerts failed: %w", err)
				}
				fmt.Fprintf(a.out, "alerts queued=%d\n", queued)
				return nil
			})
		},
	}
	recompute.Flags().BoolVar(&alerts, "alerts", false, "also queue expiry alerts")

	cmd.AddCommand(recompute)
	return cmd
}
