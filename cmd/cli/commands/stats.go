package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/services"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-teacher duty counts for a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := weekFromFlags(cmd, app.Now())
			if err != nil {
				return err
			}

			opened, _, err := openRoster(app, week)
			if err != nil {
				return err
			}

			result, err := services.ViewTeacherStats(app.Ctx, app.Database, app.Teachers, app.Logger, opened.Roster)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d. Hafta öğretmen istatistikleri\n\n", week.Week)
			fmt.Printf("  %-28s %6s %8s %6s %6s  %s\n", "Öğretmen", "Çizelge", "Hafta", "Ay", "Toplam", "Son nöbet")
			for _, row := range result.Rows {
				last := "-"
				if row.Load.LastDutyDate != nil {
					last = row.Load.LastDutyDate.Format("02.01.2006")
				}
				fmt.Printf("  %-28s %6d %8d %6d %6d  %s\n",
					row.Teacher.Name,
					row.InGrid,
					row.Load.WeeklyDuties,
					row.Load.MonthlyDuties,
					row.Load.TotalDuties,
					last,
				)
			}

			d := result.Distribution
			fmt.Printf("\nNöbetsiz: %d  1 nöbet: %d  2 nöbet: %d\n", d.None, d.One, d.Two)
			fmt.Printf("Kayıtlı aktif nöbet: %d\n", result.ActiveSlots)
			return nil
		},
	}

	addWeekFlags(cmd)
	return cmd
}
