package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/campuslife/club-awards/pkg/core/services"
	"github.com/campuslife/club-awards/pkg/db"
)

// NominateCmd creates the nominate command
func NominateCmd(app *AppContext) *cobra.Command {
	var reason string
	var submittedBy string

	cmd := &cobra.Command{
		Use:   "nominate <club_id> <award_id>",
		Short: "Nominate a club for an award",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clubID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("club_id must be a number: %w", err)
			}
			awardID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("award_id must be a number: %w", err)
			}

			nomination, err := services.SubmitNomination(app.Ctx, app.Database, app.Logger, clubID, awardID, reason, submittedBy, app.Now())
			if errors.Is(err, db.ErrDuplicateNomination) {
				return fmt.Errorf("club %d is already nominated for award %d", clubID, awardID)
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Nomination recorded (id %s)\n\n", nomination.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "why the club deserves the award")
	cmd.Flags().StringVar(&submittedBy, "by", "", "name of the person submitting the nomination")

	return cmd
}

// AutoNominateCmd creates the autoNominate command
func AutoNominateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "autoNominate",
		Short: "Create a nomination for every eligible (club, award) pair that lacks one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.AutoNominate(app.Ctx, app.Database, app.Logger, app.Now())
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Auto-nomination complete\n\n")
			fmt.Printf("Created: %d\n", result.Created)
			fmt.Printf("Skipped: %d (already nominated)\n\n", result.Skipped)

			return nil
		},
	}
}
