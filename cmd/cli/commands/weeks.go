package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

// WeeksCmd creates the weeks command
func WeeksCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "weeks",
		Short: "List selectable weeks with their saved and draft state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()
			weeks, err := roster.UpcomingWeeks(now, app.Cfg.WeeksBefore(), app.Cfg.WeeksAfter())
			if err != nil {
				return err
			}

			schedules, err := app.Database.GetDutySchedules(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch duty schedules: %w", err)
			}

			draftWeeks, err := app.Drafts.List()
			if err != nil {
				return err
			}
			hasDraft := make(map[roster.WeekRef]bool, len(draftWeeks))
			for _, w := range draftWeeks {
				hasDraft[w] = true
			}

			current := roster.CurrentWeek(now)
			fmt.Println()
			for _, w := range weeks {
				marker := "  "
				if w == current {
					marker = "▶ "
				}

				var state []string
				if db.FindSchedule(schedules, w.Week, w.Year) != nil {
					state = append(state, "kayıtlı")
				}
				if hasDraft[w] {
					state = append(state, "taslak")
				}

				fmt.Printf("%s%2d. Hafta %d  %-22s %s\n", marker, w.Week, w.Year, roster.FormatWeekRange(w.Week, w.Year), strings.Join(state, ", "))
			}
			return nil
		},
	}
}
