package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campuslife/club-awards/pkg/core/model"
)

// WeightsCmd creates the weights command
func WeightsCmd(app *AppContext) *cobra.Command {
	var set []string

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show or update the evaluation weight vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := app.Database.GetWeights(app.Ctx)
			if err != nil {
				return err
			}

			if len(set) > 0 {
				for _, pair := range set {
					if err := applyWeight(&weights, pair); err != nil {
						return err
					}
				}
				if err := weights.Validate(); err != nil {
					return err
				}
				if err := app.Database.SetWeights(app.Ctx, weights); err != nil {
					return err
				}
				fmt.Printf("\n✓ Weights updated\n")
			}

			fmt.Printf("\nEvaluation weights:\n\n")
			fmt.Printf("  social:     %.2f\n", weights.Social)
			fmt.Printf("  messaging:  %.2f\n", weights.Messaging)
			fmt.Printf("  awards:     %.2f\n", weights.Awards)
			fmt.Printf("  feedback:   %.2f\n", weights.Feedback)
			fmt.Printf("  attendance: %.2f\n", weights.Attendance)
			fmt.Printf("  reports:    %.2f\n\n", weights.Reports)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&set, "set", nil, "weight overrides as component=value pairs, e.g. --set social=0.4,feedback=0.2")

	return cmd
}

func applyWeight(weights *model.Weights, pair string) error {
	name, raw, found := strings.Cut(pair, "=")
	if !found {
		return fmt.Errorf("invalid weight override %q, expected component=value", pair)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid weight value %q for %s", raw, name)
	}

	switch name {
	case "social":
		weights.Social = value
	case "messaging":
		weights.Messaging = value
	case "awards":
		weights.Awards = value
	case "feedback":
		weights.Feedback = value
	case "attendance":
		weights.Attendance = value
	case "reports":
		weights.Reports = value
	default:
		return fmt.Errorf("unknown weight component %q", name)
	}

	return nil
}
