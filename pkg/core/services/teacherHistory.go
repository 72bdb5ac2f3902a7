package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

// DefaultHistoryWeeks is how many weeks TeacherHistory covers when none is given
const DefaultHistoryWeeks = 4

// HistoryWeek is one week of a teacher's duty history
type HistoryWeek struct {
	Week  roster.WeekRef
	Slots []roster.DutySlot
}

// TeacherHistory lists a teacher's active slots for week and the weeks before it, newest
// first. Earlier weeks are counted back within week's year and stop at week 1.
func TeacherHistory(
	ctx context.Context,
	store db.SlotStore,
	logger *zap.Logger,
	teacherID string,
	week roster.WeekRef,
	weeks int,
) ([]HistoryWeek, error) {
	if weeks <= 0 {
		weeks = DefaultHistoryWeeks
	}

	slots, err := loadSlots(ctx, store)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryWeek, 0, weeks)
	for i := 0; i < weeks && week.Week-i >= 1; i++ {
		ref := roster.WeekRef{Week: week.Week - i, Year: week.Year}

		entry := HistoryWeek{Week: ref}
		for _, slot := range slots {
			if slot.IsActive && slot.TeacherID == teacherID && slot.Week == ref.Week && slot.Year == ref.Year {
				entry.Slots = append(entry.Slots, slot)
			}
		}
		sort.SliceStable(entry.Slots, func(a, b int) bool {
			return entry.Slots[a].Day.Index() < entry.Slots[b].Day.Index()
		})
		history = append(history, entry)
	}

	logger.Debug("Loaded teacher history",
		zap.String("teacher_id", teacherID),
		zap.Int("weeks", len(history)))

	return history, nil
}
