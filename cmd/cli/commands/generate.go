package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a balanced roster for a week and keep it as a draft",
		Long: `Fill every open day with the least loaded eligible teachers.
The result replaces the week's current assignments and is stored as a draft
until 'save' is run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			if !cmd.Flags().Changed("seed") {
				seed = app.Now().UnixNano()
			}

			week, err := weekFromFlags(cmd, app.Now())
			if err != nil {
				return err
			}

			opened, _, err := openRoster(app, week)
			if err != nil {
				return err
			}

			app.Logger.Debug("Generating roster", zap.String("week", week.String()), zap.Int64("seed", seed))
			outcome, err := services.GenerateRoster(app.Ctx, app.Database, app.Teachers, app.Logger, opened.Roster, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}

			if err := saveDraft(app, opened.Roster); err != nil {
				return err
			}

			teachers, err := listTeachers(app)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printRoster(out, opened.Roster, model.TeacherNames(teachers))
			printWarnings(out, outcome.Warnings)

			fmt.Fprintf(out, "\n✓ Taslak oluşturuldu (seed: %d). Kaydetmek için 'save' çalıştırın.\n", seed)
			return nil
		},
	}

	addWeekFlags(cmd)
	cmd.Flags().Int64("seed", 0, "Seed for tie-breaking (a time-based seed is used when not set)")
	return cmd
}
