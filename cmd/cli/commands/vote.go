package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/campuslife/club-awards/pkg/core/services"
	"github.com/campuslife/club-awards/pkg/db"
)

// VoteCmd creates the vote command
func VoteCmd(app *AppContext) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "vote <award_id> <club_id>",
		Short: "Cast a feedback vote for a club on an award",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			awardID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("award_id must be a number: %w", err)
			}
			clubID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("club_id must be a number: %w", err)
			}

			vote, err := services.SubmitVote(app.Ctx, app.Database, app.Logger, awardID, clubID, token, app.Now())
			if errors.Is(err, db.ErrDuplicateVote) {
				return fmt.Errorf("this voter has already voted on this award")
			}
			if errors.Is(err, services.ErrIneligibleClub) {
				return fmt.Errorf("club %d is not eligible for award %d", clubID, awardID)
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Vote recorded (id %s)\n\n", vote.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "voter token enforcing one vote per voter per award; anonymous when empty")

	return cmd
}
