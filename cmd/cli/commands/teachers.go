package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/services"
)

// ListTeachersCmd creates the listTeachers command
func ListTeachersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listTeachers",
		Short: "List teachers ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			teachers, err := listTeachers(app)
			if err != nil {
				return err
			}
			app.Logger.Info("Teachers fetched successfully", zap.Int("count", len(teachers)))

			shown := 0
			for _, t := range teachers {
				if !all && !t.IsActive() {
					continue
				}
				if shown == 0 {
					fmt.Println()
				}
				shown++

				details := t.Branch
				if t.Level != "" {
					details += " / " + t.Level
				}
				status := ""
				if !t.IsActive() {
					status = " [" + t.Status + "]"
				}
				fmt.Printf("- %s (%s) %s%s\n", t.Name, t.ID, details, status)
			}
			fmt.Printf("\n%d öğretmen\n", shown)
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include inactive teachers")
	return cmd
}

// SyncTeachersCmd creates the syncTeachers command
func SyncTeachersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "syncTeachers",
		Short: "Copy the staff sheet into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.TeacherSink == nil || app.SheetsClient == nil || app.Cfg.StaffSheetID == "" {
				return fmt.Errorf("syncTeachers needs the postgres backend and a staffSheetID")
			}

			source := app.SheetsClient.StaffSheet(app.Cfg.StaffSheetID, app.Cfg.StaffTab)
			count, err := services.SyncTeachers(app.Ctx, source, app.TeacherSink, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %d öğretmen aktarıldı\n", count)
			return nil
		},
	}
}
