package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

// SeedResult reports the areas in the store after seeding
type SeedResult struct {
	Areas  []roster.DutyArea
	Seeded bool
}

// SeedDutyAreas inserts the default duty area catalog with fresh IDs when the store has no areas.
// A store that already holds areas is left untouched.
func SeedDutyAreas(ctx context.Context, store db.AreaStore, logger *zap.Logger, now time.Time) (*SeedResult, error) {
	logger.Debug("Checking existing duty areas")
	existing, err := store.GetDutyAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duty areas: %w", err)
	}

	if len(existing) > 0 {
		areas, err := db.AreasToDomain(existing)
		if err != nil {
			return nil, fmt.Errorf("failed to convert duty areas: %w", err)
		}
		logger.Info("Duty areas already exist, skipping seed", zap.Int("count", len(areas)))
		return &SeedResult{Areas: roster.SortAreasByPriority(areas)}, nil
	}

	areas := roster.DefaultCatalog()
	records := make([]db.DutyArea, len(areas))
	for i := range areas {
		areas[i].ID = uuid.New().String()
		areas[i].CreatedAt = now
		if err := areas[i].Validate(); err != nil {
			return nil, err
		}
		records[i] = db.DutyAreaFromDomain(areas[i])
	}

	if err := store.InsertDutyAreas(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to insert duty areas: %w", err)
	}

	logger.Info("Seeded duty areas", zap.Int("count", len(areas)))
	return &SeedResult{Areas: areas, Seeded: true}, nil
}

// ListDutyAreas returns every duty area in priority order
func ListDutyAreas(ctx context.Context, store db.AreaStore, logger *zap.Logger) ([]roster.DutyArea, error) {
	areas, err := loadAreas(ctx, store)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded duty areas", zap.Int("count", len(areas)))
	return areas, nil
}
