package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/services"
)

// PublishCmd creates the publish command
func PublishCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a saved week to the roster sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.SheetsClient == nil {
				return fmt.Errorf("publishing needs Google access, set rosterSheetID in the config")
			}

			week, err := weekFromFlags(cmd, app.Now())
			if err != nil {
				return err
			}

			tab, err := services.PublishRoster(
				app.Ctx,
				app.Database,
				app.Teachers,
				app.SheetsClient,
				app.Logger,
				app.Cfg.RosterSheetID,
				week,
				app.Closures,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %d. Hafta '%s' sekmesine yayınlandı\n", week.Week, tab)
			fmt.Printf("https://docs.google.com/spreadsheets/d/%s\n", app.Cfg.RosterSheetID)
			return nil
		},
	}

	addWeekFlags(cmd)
	return cmd
}
