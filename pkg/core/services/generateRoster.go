package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

// GenerateRoster replaces the roster's schedule with a generated one balanced against
// the historical slot log. Nothing is written to the store.
func GenerateRoster(
	ctx context.Context,
	store db.SlotStore,
	teachers TeacherSource,
	logger *zap.Logger,
	r *roster.Roster,
	rng *rand.Rand,
) (*roster.GenerateOutcome, error) {
	week := r.Week()
	logger.Debug("Generating roster", zap.Int("week", week.Week), zap.Int("year", week.Year))

	active, err := listActiveTeachers(ctx, teachers)
	if err != nil {
		return nil, err
	}

	slots, err := loadSlots(ctx, store)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded generation inputs",
		zap.Int("teachers", len(active)),
		zap.Int("areas", len(r.Areas())),
		zap.Int("slots", len(slots)))

	outcome, err := roster.Generate(roster.GenerateInput{
		Week:       week,
		TeacherIDs: model.TeacherIDs(active),
		Areas:      r.Areas(),
		Slots:      slots,
		Closed:     r.Closed(),
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate roster: %w", err)
	}

	r.Replace(outcome.Grid)

	for _, w := range outcome.Warnings {
		logger.Warn("Area under-staffed",
			zap.String("day", string(w.Day)),
			zap.String("area", w.AreaName),
			zap.Int("assigned", w.Assigned),
			zap.Int("required", w.Required))
	}
	logger.Info("Roster generated",
		zap.Int("week", week.Week),
		zap.Int("year", week.Year),
		zap.Int("assignments", r.TotalAssignments()),
		zap.Int("warnings", len(outcome.Warnings)))

	return outcome, nil
}
