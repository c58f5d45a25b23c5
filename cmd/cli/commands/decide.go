package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/campuslife/club-awards/pkg/core/services"
)

// DecideCmd creates the decide command
func DecideCmd(app *AppContext) *cobra.Command {
	var reason string
	var decidedBy string
	var validate bool

	cmd := &cobra.Command{
		Use:   "decide <award_id> <club_id>",
		Short: "Record the winner decision for an award and declare its results",
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

			decision, err := services.RecordDecision(app.Ctx, app.Database, app.Logger, services.RecordDecisionRequest{
				AwardID:             awardID,
				ClubID:              clubID,
				Reason:              reason,
				DecidedBy:           decidedBy,
				ValidateEligibility: validate,
				Now:                 app.Now(),
			})
			if errors.Is(err, services.ErrIneligibleClub) {
				return fmt.Errorf("club %d is not eligible for award %d", clubID, awardID)
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Decision recorded\n\n")
			fmt.Printf("Award:   %d\n", decision.AwardID)
			fmt.Printf("Winner:  club %d\n", decision.ClubID)
			fmt.Printf("Decided: %s by %s\n\n", decision.DecidedAt.Format("2006-01-02 15:04"), decision.DecidedBy)

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "rationale for the decision")
	cmd.Flags().StringVar(&decidedBy, "by", "", "name of the deciding admin")
	cmd.Flags().BoolVar(&validate, "validate", false, "reject the decision if the club is not eligible for the award")

	return cmd
}
