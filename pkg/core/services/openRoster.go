package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

// OpenRosterStore defines the database operations needed to open a week
type OpenRosterStore interface {
	db.AreaStore
	db.ScheduleStore
}

// OpenedRoster is an editing session over one week
type OpenedRoster struct {
	Roster *roster.Roster

	// Saved is the week's stored schedule, nil if the week was never saved
	Saved *roster.DutySchedule
}

// OpenRoster starts an editing session for week from its saved schedule, or from an
// empty grid over the current areas if the week was never saved. Days matched by
// closures are closed.
func OpenRoster(
	ctx context.Context,
	store OpenRosterStore,
	logger *zap.Logger,
	week roster.WeekRef,
	closures []roster.ClosureRule,
) (*OpenedRoster, error) {
	logger.Debug("Opening roster", zap.Int("week", week.Week), zap.Int("year", week.Year))

	areas, err := loadAreas(ctx, store)
	if err != nil {
		return nil, err
	}

	saved, err := loadSchedule(ctx, store, week)
	if err != nil {
		return nil, err
	}

	closed, err := roster.ResolveClosures(week.Week, week.Year, closures)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve closures: %w", err)
	}
	for day, reason := range closed {
		logger.Debug("Day closed", zap.String("day", string(day)), zap.String("reason", reason))
	}

	var grid roster.Grid
	if saved != nil {
		grid = saved.Schedule
		logger.Debug("Loaded saved schedule", zap.String("id", saved.ID), zap.Int("assignments", roster.TotalAssignments(grid)))
	}

	return &OpenedRoster{
		Roster: roster.NewRoster(week, areas, grid, closed),
		Saved:  saved,
	}, nil
}
