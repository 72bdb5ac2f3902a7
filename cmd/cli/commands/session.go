package commands

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/core/services"
	"github.com/okulnobet/duty-roster/pkg/drafts"
)

// openRoster opens week for editing. An unsaved draft of the week takes precedence over
// the saved schedule.
func openRoster(app *AppContext, week roster.WeekRef) (*services.OpenedRoster, bool, error) {
	opened, err := services.OpenRoster(app.Ctx, app.Database, app.Logger, week, app.Closures)
	if err != nil {
		return nil, false, err
	}

	draft, err := app.Drafts.Load(week)
	if errors.Is(err, drafts.ErrNotFound) {
		return opened, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	opened.Roster.Replace(draft.Grid)
	app.Logger.Debug("Applied draft", zap.String("week", week.String()), zap.Time("updated_at", draft.UpdatedAt))
	return opened, true, nil
}

// saveDraft stores the roster's grid as the week's draft
func saveDraft(app *AppContext, r *roster.Roster) error {
	if err := app.Drafts.Save(r.Week(), r.Grid()); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// listTeachers returns every teacher ordered by name
func listTeachers(app *AppContext) ([]model.Teacher, error) {
	teachers, err := app.Teachers.ListTeachers(app.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	model.SortTeachersByName(teachers)
	return teachers, nil
}
