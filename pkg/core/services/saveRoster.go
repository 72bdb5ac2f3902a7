package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

// SaveRosterStore defines the database operations needed to save a week
type SaveRosterStore interface {
	db.SlotStore
	db.ScheduleStore
}

// SaveResult describes a saved week
type SaveResult struct {
	Schedule roster.DutySchedule
	Created  bool
	Slots    int
}

// SaveRoster commits the roster as the week's schedule and mirrors it into the slot log.
//
// The schedule record is updated if the week was saved before and created otherwise.
// The week's previously active slots are then deactivated and one slot per assignment
// is appended, so resaving never double counts. Failures are reported as a
// *PersistenceError naming the stage that failed; earlier stages are not rolled back.
func SaveRoster(
	ctx context.Context,
	store SaveRosterStore,
	logger *zap.Logger,
	r *roster.Roster,
	now time.Time,
) (*SaveResult, error) {
	week := r.Week()
	grid := r.Grid()
	logger.Debug("Saving roster", zap.Int("week", week.Week), zap.Int("year", week.Year), zap.Int("assignments", roster.TotalAssignments(grid)))

	existing, err := store.GetDutySchedules(ctx)
	if err != nil {
		return nil, &PersistenceError{Stage: StageSchedule, Err: err}
	}

	schedule := roster.DutySchedule{
		Week:      week.Week,
		Year:      week.Year,
		Schedule:  grid,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created := false
	if previous := db.FindSchedule(existing, week.Week, week.Year); previous != nil {
		schedule.ID = previous.ID
		if createdAt, err := db.ParseTime(previous.CreatedAt); err == nil && !createdAt.IsZero() {
			schedule.CreatedAt = createdAt
		}

		record, err := db.DutyScheduleFromDomain(schedule)
		if err != nil {
			return nil, &PersistenceError{Stage: StageSchedule, Err: err}
		}
		if err := store.UpdateDutySchedule(ctx, &record); err != nil {
			return nil, &PersistenceError{Stage: StageSchedule, Err: err}
		}
		logger.Debug("Updated schedule", zap.String("id", schedule.ID))
	} else {
		schedule.ID = uuid.New().String()

		record, err := db.DutyScheduleFromDomain(schedule)
		if err != nil {
			return nil, &PersistenceError{Stage: StageSchedule, Err: err}
		}
		if err := store.InsertDutySchedule(ctx, &record); err != nil {
			return nil, &PersistenceError{Stage: StageSchedule, Err: err}
		}
		created = true
		logger.Debug("Created schedule", zap.String("id", schedule.ID))
	}

	if err := store.DeactivateDutySlots(ctx, week.Week, week.Year, db.FormatTime(now)); err != nil {
		return nil, &PersistenceError{Stage: StageDeactivate, Err: err}
	}

	slots := slotsFromGrid(grid, r.Areas(), week, now)
	if err := store.InsertDutySlots(ctx, slots); err != nil {
		return nil, &PersistenceError{Stage: StageSlots, Err: err}
	}

	logger.Info("Roster saved",
		zap.Int("week", week.Week),
		zap.Int("year", week.Year),
		zap.Bool("created", created),
		zap.Int("slots", len(slots)))

	return &SaveResult{
		Schedule: schedule,
		Created:  created,
		Slots:    len(slots),
	}, nil
}

// slotsFromGrid lists one active slot record per assignment, by day then area priority
// then assignment order
func slotsFromGrid(grid roster.Grid, areas []roster.DutyArea, week roster.WeekRef, now time.Time) []db.DutySlot {
	var slots []db.DutySlot
	for _, day := range roster.DutyDays {
		for _, area := range roster.SortAreasByPriority(areas) {
			for _, teacherID := range grid[day][area.ID] {
				slots = append(slots, db.DutySlotFromDomain(roster.DutySlot{
					ID:        uuid.New().String(),
					TeacherID: teacherID,
					AreaID:    area.ID,
					Day:       day,
					Week:      week.Week,
					Year:      week.Year,
					IsActive:  true,
					CreatedAt: now,
					UpdatedAt: now,
				}))
			}
		}
	}
	return slots
}
