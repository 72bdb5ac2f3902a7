package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <day> <area> <teacher>",
		Short: "Assign a teacher to an area on a day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editCell(cmd, app, args, func(r *roster.Roster, day roster.Weekday, areaID, teacherID string) error {
				return r.Assign(day, areaID, teacherID)
			}, "nöbetine atandı")
		},
	}

	addWeekFlags(cmd)
	return cmd
}

// UnassignCmd creates the unassign command
func UnassignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassign <day> <area> <teacher>",
		Short: "Remove a teacher from an area on a day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editCell(cmd, app, args, func(r *roster.Roster, day roster.Weekday, areaID, teacherID string) error {
				return r.Unassign(day, areaID, teacherID)
			}, "nöbetinden çıkarıldı")
		},
	}

	addWeekFlags(cmd)
	return cmd
}

// editCell resolves <day> <area> <teacher>, applies edit to the week's roster and
// stores the result as a draft
func editCell(
	cmd *cobra.Command,
	app *AppContext,
	args []string,
	edit func(r *roster.Roster, day roster.Weekday, areaID, teacherID string) error,
	done string,
) error {
	week, err := weekFromFlags(cmd, app.Now())
	if err != nil {
		return err
	}

	day, err := roster.ParseWeekday(args[0])
	if err != nil {
		return err
	}

	opened, _, err := openRoster(app, week)
	if err != nil {
		return err
	}
	r := opened.Roster

	area, err := resolveArea(r.Areas(), args[1])
	if err != nil {
		return err
	}

	teachers, err := listTeachers(app)
	if err != nil {
		return err
	}
	teacher, err := resolveTeacher(teachers, args[2])
	if err != nil {
		return err
	}

	if err := edit(r, day, area.ID, teacher.ID); err != nil {
		return err
	}
	if err := saveDraft(app, r); err != nil {
		return err
	}

	assigned := r.Assignments(day, area.ID)
	fmt.Printf("\n✓ %s: %s %s %s (%d/%d)\n", teacher.Name, day, area.Name, done, len(assigned), area.Capacity)
	fmt.Printf("  Haftalık nöbet sayısı: %d/%d\n", r.WeeklyCount(teacher.ID), roster.MaxWeeklyDuties)
	return nil
}

// ResetCmd creates the reset command
func ResetCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear every assignment of a week's draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")

			week, err := weekFromFlags(cmd, app.Now())
			if err != nil {
				return err
			}

			opened, _, err := openRoster(app, week)
			if err != nil {
				return err
			}
			r := opened.Roster

			ask := func() bool {
				return yes || confirm(fmt.Sprintf("%d. Hafta için %d atama silinecek. Emin misiniz?", week.Week, r.TotalAssignments()))
			}

			if err := r.Reset(ask); err != nil {
				return err
			}
			if err := saveDraft(app, r); err != nil {
				return err
			}

			fmt.Println("\n✓ Çizelge temizlendi. Kaydetmek için 'save' çalıştırın.")
			return nil
		},
	}

	addWeekFlags(cmd)
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}
