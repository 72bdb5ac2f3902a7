package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

// TeacherStatsRow is one teacher's duties in the roster under edit and in the slot log
type TeacherStatsRow struct {
	Teacher model.Teacher
	InGrid  int
	Load    roster.TeacherDutyStats
}

// DutyDistribution counts teachers by their number of duties in the roster under edit
type DutyDistribution struct {
	None int
	One  int
	Two  int
}

// TeacherStatsResult holds the statistics of every active teacher
type TeacherStatsResult struct {
	Week         roster.WeekRef
	Rows         []TeacherStatsRow
	Distribution DutyDistribution
	ActiveSlots  int
}

// ViewTeacherStats derives per-teacher duty counts for the roster's week, ordered by name
func ViewTeacherStats(
	ctx context.Context,
	store db.SlotStore,
	teachers TeacherSource,
	logger *zap.Logger,
	r *roster.Roster,
) (*TeacherStatsResult, error) {
	week := r.Week()

	active, err := listActiveTeachers(ctx, teachers)
	if err != nil {
		return nil, err
	}

	slots, err := loadSlots(ctx, store)
	if err != nil {
		return nil, err
	}

	result := &TeacherStatsResult{
		Week: week,
		Rows: make([]TeacherStatsRow, 0, len(active)),
	}

	for _, slot := range slots {
		if slot.IsActive {
			result.ActiveSlots++
		}
	}

	for _, teacher := range active {
		inGrid := r.WeeklyCount(teacher.ID)
		switch {
		case inGrid == 0:
			result.Distribution.None++
		case inGrid == 1:
			result.Distribution.One++
		default:
			result.Distribution.Two++
		}

		result.Rows = append(result.Rows, TeacherStatsRow{
			Teacher: teacher,
			InGrid:  inGrid,
			Load:    roster.TeacherDutyLoad(teacher.ID, slots, week.Week, week.Year),
		})
	}

	logger.Debug("Computed teacher stats",
		zap.Int("teachers", len(result.Rows)),
		zap.Int("active_slots", result.ActiveSlots))

	return result, nil
}
