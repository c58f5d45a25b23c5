package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NominationsCmd creates the nominations command
func NominationsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "nominations <award_id>",
		Short: "List the nominations recorded for an award",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			awardID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("award_id must be a number: %w", err)
			}

			nominations, err := app.Database.GetNominations(app.Ctx, awardID)
			if err != nil {
				return err
			}

			if len(nominations) == 0 {
				fmt.Printf("\nNo nominations for award %d.\n\n", awardID)
				return nil
			}

			fmt.Printf("\nNominations for award %d:\n\n", awardID)
			for _, nomination := range nominations {
				fmt.Printf("  club %-4d  %s\n", nomination.ClubID, nomination.SubmittedAt.Format("2006-01-02"))
				if nomination.Reason != "" {
					fmt.Printf("             %s\n", nomination.Reason)
				}
			}
			fmt.Printf("\n%d nominations\n\n", len(nominations))

			return nil
		},
	}
}
