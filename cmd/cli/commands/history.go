package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/core/services"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <teacher>",
		Short: "Show a teacher's saved duties over recent weeks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, _ := cmd.Flags().GetInt("weeks")

			week, err := weekFromFlags(cmd, app.Now())
			if err != nil {
				return err
			}

			teachers, err := listTeachers(app)
			if err != nil {
				return err
			}
			teacher, err := resolveTeacher(teachers, args[0])
			if err != nil {
				return err
			}

			areas, err := services.ListDutyAreas(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}
			areaNames := make(map[string]string, len(areas))
			for _, a := range areas {
				areaNames[a.ID] = a.Name
			}

			history, err := services.TeacherHistory(app.Ctx, app.Database, app.Logger, teacher.ID, week, weeks)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s nöbet geçmişi\n", teacher.Name)
			for _, h := range history {
				fmt.Printf("\n%d. Hafta (%s)\n", h.Week.Week, roster.FormatWeekRange(h.Week.Week, h.Week.Year))
				if len(h.Slots) == 0 {
					fmt.Println("  -")
					continue
				}
				for _, slot := range h.Slots {
					fmt.Printf("  %-10s %s\n", slot.Day, displayName(areaNames, slot.AreaID))
				}
			}
			return nil
		},
	}

	addWeekFlags(cmd)
	cmd.Flags().Int("weeks", services.DefaultHistoryWeeks, "Number of weeks to show")
	return cmd
}
