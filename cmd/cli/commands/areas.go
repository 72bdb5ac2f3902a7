package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/services"
)

// SeedAreasCmd creates the seedAreas command
func SeedAreasCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seedAreas",
		Short: "Create the default duty areas if none exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.SeedDutyAreas(app.Ctx, app.Database, app.Logger, app.Now())
			if err != nil {
				return err
			}

			if result.Seeded {
				fmt.Printf("\n✓ %d nöbet yeri oluşturuldu\n", len(result.Areas))
			} else {
				fmt.Printf("\nNöbet yerleri zaten mevcut (%d), değişiklik yapılmadı\n", len(result.Areas))
			}
			return nil
		},
	}
}

// ListAreasCmd creates the listAreas command
func ListAreasCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listAreas",
		Short: "List duty areas in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			areas, err := services.ListDutyAreas(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d nöbet yeri:\n\n", len(areas))
			for _, area := range areas {
				status := ""
				if !area.IsActive {
					status = " (pasif)"
				}
				fmt.Printf("  %d. %-16s kat: %-10s kapasite: %d%s\n", area.Priority, area.Name, area.Floor, area.Capacity, status)
				if area.Description != "" {
					fmt.Printf("     %s\n", area.Description)
				}
				fmt.Printf("     ID: %s\n", area.ID)
			}
			return nil
		},
	}
}
