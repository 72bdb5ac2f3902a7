package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/clients/sheetsclient"
	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// RosterPublisher writes a roster to a spreadsheet and returns the tab it was written to
type RosterPublisher interface {
	PublishRoster(spreadsheetID string, published *sheetsclient.PublishedRoster) (string, error)
}

// PublishRoster writes the saved schedule of week to the roster spreadsheet with one row
// per area and teacher names per weekday. It fails with ErrNoSchedule if the week was
// never saved.
func PublishRoster(
	ctx context.Context,
	store OpenRosterStore,
	teachers TeacherSource,
	publisher RosterPublisher,
	logger *zap.Logger,
	spreadsheetID string,
	week roster.WeekRef,
	closures []roster.ClosureRule,
) (string, error) {
	if spreadsheetID == "" {
		return "", fmt.Errorf("rosterSheetID is not configured")
	}

	areas, err := loadAreas(ctx, store)
	if err != nil {
		return "", err
	}

	saved, err := loadSchedule(ctx, store, week)
	if err != nil {
		return "", err
	}
	if saved == nil {
		return "", fmt.Errorf("%w: %s", ErrNoSchedule, week)
	}

	closed, err := roster.ResolveClosures(week.Week, week.Year, closures)
	if err != nil {
		return "", fmt.Errorf("failed to resolve closures: %w", err)
	}

	staff, err := teachers.ListTeachers(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list teachers: %w", err)
	}

	published := buildPublishedRoster(week, areas, saved.Schedule, closed, model.TeacherNames(staff))

	logger.Debug("Publishing roster", zap.String("tab", published.TabTitle()), zap.Int("areas", len(published.Rows)))
	tab, err := publisher.PublishRoster(spreadsheetID, published)
	if err != nil {
		return "", fmt.Errorf("failed to publish roster: %w", err)
	}

	logger.Info("Roster published", zap.String("tab", tab), zap.Int("week", week.Week), zap.Int("year", week.Year))
	return tab, nil
}

// buildPublishedRoster lays out the grid with one row per area in priority order
func buildPublishedRoster(
	week roster.WeekRef,
	areas []roster.DutyArea,
	grid roster.Grid,
	closed roster.ClosedDays,
	names map[string]string,
) *sheetsclient.PublishedRoster {
	published := &sheetsclient.PublishedRoster{
		Week:   week.Week,
		Year:   week.Year,
		Closed: closed,
	}

	for _, area := range roster.SortAreasByPriority(areas) {
		row := sheetsclient.PublishedRosterRow{
			Area:     area.Name,
			Floor:    area.Floor,
			Teachers: make(map[roster.Weekday][]string, len(roster.DutyDays)),
		}
		for _, day := range roster.DutyDays {
			for _, teacherID := range grid[day][area.ID] {
				row.Teachers[day] = append(row.Teachers[day], teacherName(names, teacherID))
			}
		}
		published.Rows = append(published.Rows, row)
	}

	return published
}
