package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/model"
)

// TeacherSink stores a copy of the staff list
type TeacherSink interface {
	UpsertTeachers(ctx context.Context, teachers []model.Teacher) error
}

// SyncTeachers copies every teacher from source into sink, including inactive ones so
// that status changes propagate
func SyncTeachers(ctx context.Context, source TeacherSource, sink TeacherSink, logger *zap.Logger) (int, error) {
	logger.Debug("Fetching teachers from source")
	teachers, err := source.ListTeachers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list teachers: %w", err)
	}

	if err := sink.UpsertTeachers(ctx, teachers); err != nil {
		return 0, fmt.Errorf("failed to store teachers: %w", err)
	}

	logger.Info("Teachers synced",
		zap.Int("count", len(teachers)),
		zap.Int("active", len(model.ActiveTeachers(teachers))))
	return len(teachers), nil
}
