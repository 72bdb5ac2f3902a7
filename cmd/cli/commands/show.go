package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/model"
)

// ShowCmd creates the show command
func ShowCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a week's roster (draft if one exists, otherwise the saved schedule)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := weekFromFlags(cmd, app.Now())
			if err != nil {
				return err
			}

			opened, fromDraft, err := openRoster(app, week)
			if err != nil {
				return err
			}

			teachers, err := listTeachers(app)
			if err != nil {
				return err
			}

			printRoster(cmd.OutOrStdout(), opened.Roster, model.TeacherNames(teachers))

			switch {
			case fromDraft:
				fmt.Println("\nKaydedilmemiş taslak gösteriliyor ('save' ile kaydedin)")
			case opened.Saved == nil:
				fmt.Println("\nBu hafta için kayıtlı çizelge yok")
			default:
				fmt.Printf("\nSon kayıt: %s\n", opened.Saved.UpdatedAt.Local().Format("02.01.2006 15:04"))
			}
			return nil
		},
	}

	addWeekFlags(cmd)
	return cmd
}
