package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campuslife/club-awards/pkg/core/services"
)

// SeedCmd creates the seed command
func SeedCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty database with sample clubs, the award catalogue and default weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.Seed(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Seeding complete\n\n")
			fmt.Printf("Clubs created:  %d\n", result.ClubsCreated)
			fmt.Printf("Awards created: %d\n", result.AwardsCreated)
			if result.WeightsCreated {
				fmt.Printf("Default evaluation weights written\n")
			}
			fmt.Println()

			return nil
		},
	}
}
