package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListClubsCmd creates the listClubs command
func ListClubsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listClubs",
		Short: "List all registered clubs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clubs, err := app.Database.GetClubs(app.Ctx)
			if err != nil {
				return err
			}

			maxNameLen := 10
			for _, club := range clubs {
				if len(club.Name) > maxNameLen {
					maxNameLen = len(club.Name)
				}
			}

			fmt.Printf("\n  %4s  %-*s  %-10s  %7s  %7s\n", "ID", maxNameLen, "Name", "Category", "Founded", "Members")
			for _, club := range clubs {
				fmt.Printf("  %4d  %-*s  %-10s  %7d  %7d\n",
					club.ID, maxNameLen, club.Name, club.Category, club.FoundedYear, club.MemberCount)
			}
			fmt.Printf("\n%d clubs\n\n", len(clubs))

			return nil
		},
	}
}

// ListAwardsCmd creates the listAwards command
func ListAwardsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listAwards",
		Short: "List the award catalogue with declaration status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			awards, err := app.Database.GetAwards(app.Ctx)
			if err != nil {
				return err
			}

			maxNameLen := 10
			for _, award := range awards {
				if len(award.Name) > maxNameLen {
					maxNameLen = len(award.Name)
				}
			}

			fmt.Printf("\n  %4s  %-*s  %-13s  %s\n", "ID", maxNameLen, "Name", "Category", "Status")
			for _, award := range awards {
				status := "open"
				if award.WinnersDeclared {
					status = "declared"
					if award.DeclaredAt != nil {
						status = fmt.Sprintf("declared %s", award.DeclaredAt.Format("2006-01-02"))
					}
				}
				fmt.Printf("  %4d  %-*s  %-13s  %s\n", award.ID, maxNameLen, award.Name, award.Category, status)
			}
			fmt.Printf("\n%d awards\n\n", len(awards))

			return nil
		},
	}
}
