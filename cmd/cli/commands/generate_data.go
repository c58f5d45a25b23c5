package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campuslife/club-awards/pkg/core/services"
)

// GenerateDataCmd creates the generateData command
func GenerateDataCmd(app *AppContext) *cobra.Command {
	var seed int64
	var rule string

	cmd := &cobra.Command{
		Use:   "generateData",
		Short: "Write synthetic metric snapshots and report documents for the seeded clubs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rule == "" {
				rule = app.Cfg.SnapshotRule
			}

			result, err := services.GenerateData(app.Ctx, app.Database, app.Logger, services.GenerateDataOptions{
				DataDir:    app.Cfg.DataDir,
				ReportsDir: app.Cfg.ReportsDir,
				Rule:       rule,
				Seed:       seed,
				Now:        app.Now(),
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Synthetic data generated (%d periods)\n\n", result.Periods)
			for _, file := range result.Files {
				fmt.Printf("  %s\n", file)
			}
			fmt.Printf("  %d report documents in %s\n\n", result.Reports, app.Cfg.ReportsDir)

			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for reproducible data")
	cmd.Flags().StringVar(&rule, "rule", "", "RRULE describing the snapshot periods (defaults to the configured snapshotRule)")

	return cmd
}
