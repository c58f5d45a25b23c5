package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campuslife/club-awards/pkg/clients/sheetsclient"
	"github.com/campuslife/club-awards/pkg/core/services"
	"github.com/campuslife/club-awards/pkg/sources"
)

// RefreshMetricsCmd creates the refreshMetrics command
func RefreshMetricsCmd(app *AppContext) *cobra.Command {
	var fromSheet bool

	cmd := &cobra.Command{
		Use:   "refreshMetrics",
		Short: "Re-aggregate the metric snapshots into one metrics row per club",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clubs, err := app.Database.GetClubs(app.Ctx)
			if err != nil {
				return err
			}
			clubIDs := make([]int64, len(clubs))
			for i, club := range clubs {
				clubIDs[i] = club.ID
			}

			var loader services.SourceLoader
			if fromSheet {
				if app.Cfg.MetricsSheetID == "" {
					return fmt.Errorf("metricsSheetID is not configured")
				}
				client, err := sheetsclient.NewClient(app.Ctx, app.Cfg.OAuthClient, "cli")
				if err != nil {
					return err
				}
				loader = &sheetsclient.MetricsLoader{
					Client:  client,
					Cfg:     app.Cfg,
					ClubIDs: clubIDs,
					Logger:  app.Logger,
				}
			} else {
				loader = &sources.CSVLoader{
					DataDir:    app.Cfg.DataDir,
					ReportsDir: app.Cfg.ReportsDir,
					ClubIDs:    clubIDs,
					Logger:     app.Logger,
				}
			}

			result, err := services.RefreshMetrics(app.Ctx, app.Database, app.Logger, loader)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Metrics refreshed for %d clubs\n", result.ClubsUpdated)
			if len(result.UnknownClubIDs) > 0 {
				fmt.Printf("  Dropped rows for unknown club IDs: %v\n", result.UnknownClubIDs)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&fromSheet, "from-sheet", false, "load snapshots from the configured Google spreadsheet instead of the CSV files")

	return cmd
}
