package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/services"
)

// ReportCmd creates the report command
func ReportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise a saved week by area and by teacher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := weekFromFlags(cmd, app.Now())
			if err != nil {
				return err
			}

			report, err := services.WeeklyReport(app.Ctx, app.Database, app.Teachers, app.Logger, week)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d. Hafta Raporu (%s)\n", report.Week.Week, report.Range)
			fmt.Printf("Toplam nöbet: %d\n", report.Total)

			fmt.Printf("\nNöbet yerleri:\n")
			for _, a := range report.Areas {
				fmt.Printf("  %-20s %3d/%d\n", a.Area.Name, a.Duties, a.Capacity)
			}

			fmt.Printf("\nÖğretmenler:\n")
			for _, t := range report.Teachers {
				fmt.Printf("  %-28s %d\n", t.Name, t.Duties)
			}
			return nil
		},
	}

	addWeekFlags(cmd)
	return cmd
}
