package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/campuslife/club-awards/pkg/core/services"
	"github.com/campuslife/club-awards/pkg/db"
)

// RankingsCmd creates the rankings command
func RankingsCmd(app *AppContext) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "rankings <award_id>",
		Short: "Compute and display the ranked candidates for an award",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			awardID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("award_id must be a number: %w", err)
			}

			result, err := services.RankAward(app.Ctx, app.Database, app.Logger, awardID, app.Now())
			if err != nil {
				return err
			}

			fmt.Printf("\nRankings for %q\n\n", result.Award.Name)

			if len(result.Entries) == 0 {
				fmt.Printf("No eligible clubs for this award.\n\n")
				return nil
			}

			// Calculate the name column width
			maxNameLen := 10
			for _, entry := range result.Entries {
				if len(entry.Club.Name) > maxNameLen {
					maxNameLen = len(entry.Club.Name)
				}
			}

			fmt.Printf("  %4s  %-*s  %8s  %6s\n", "Rank", maxNameLen, "Club", "Score", "Votes")
			for _, entry := range result.Entries {
				fmt.Printf("  %4d  %-*s  %8.4f  %6d\n",
					entry.Rank, maxNameLen, entry.Club.Name, entry.Score, entry.Raw.Votes)
				if verbose {
					c := entry.Components
					fmt.Printf("        social=%.4f messaging=%.4f awards=%.4f feedback=%.4f attendance=%.4f reports=%.4f\n",
						c.Social, c.Messaging, c.Awards, c.Feedback, c.Attendance, c.Reports)
				}
			}
			fmt.Printf("\nTotal votes cast: %d\n", result.TotalVotes)

			decision, err := app.Database.GetDecision(app.Ctx, awardID)
			if err != nil && !errors.Is(err, db.ErrNotFound) {
				return err
			}
			if decision != nil {
				fmt.Printf("\nDeclared winner: club %d (decided by %s on %s)\n",
					decision.ClubID, decision.DecidedBy, decision.DecidedAt.Format("2006-01-02"))
				if decision.Reason != "" {
					fmt.Printf("Reason: %s\n", decision.Reason)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the normalized score components per club")

	return cmd
}
