package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/services"
)

// SaveCmd creates the save command
func SaveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a week's roster to the database",
		Long: `Commit the week's roster as its schedule and rewrite the week's duty slots.
Saving a week again replaces its previous slots.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := weekFromFlags(cmd, app.Now())
			if err != nil {
				return err
			}

			opened, fromDraft, err := openRoster(app, week)
			if err != nil {
				return err
			}
			if !fromDraft && opened.Saved == nil && !opened.Roster.HasUnsavedChanges() {
				fmt.Println("\nKaydedilecek atama yok")
				return nil
			}

			result, err := services.SaveRoster(app.Ctx, app.Database, app.Logger, opened.Roster, app.Now())
			if err != nil {
				return err
			}

			if err := app.Drafts.Delete(week); err != nil {
				app.Logger.Warn("Failed to remove draft after save", zap.String("week", week.String()), zap.Error(err))
			}

			verb := "güncellendi"
			if result.Created {
				verb = "kaydedildi"
			}
			fmt.Printf("\n✓ %d. Hafta çizelgesi %s (%d nöbet)\n", week.Week, verb, result.Slots)
			return nil
		},
	}

	addWeekFlags(cmd)
	return cmd
}
