package services

import (
	"context"
	"fmt"

	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

// TeacherSource lists the school's staff
type TeacherSource interface {
	ListTeachers(ctx context.Context) ([]model.Teacher, error)
}

// listActiveTeachers returns the active teachers of source ordered by name
func listActiveTeachers(ctx context.Context, source TeacherSource) ([]model.Teacher, error) {
	teachers, err := source.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	active := model.ActiveTeachers(teachers)
	model.SortTeachersByName(active)
	return active, nil
}

// loadAreas fetches and converts every duty area, failing with ErrNoAreas if there are none
func loadAreas(ctx context.Context, store db.AreaStore) ([]roster.DutyArea, error) {
	records, err := store.GetDutyAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duty areas: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoAreas
	}
	areas, err := db.AreasToDomain(records)
	if err != nil {
		return nil, fmt.Errorf("failed to convert duty areas: %w", err)
	}
	return roster.SortAreasByPriority(areas), nil
}

// loadSlots fetches and converts the whole slot log in insertion order
func loadSlots(ctx context.Context, store db.SlotStore) ([]roster.DutySlot, error) {
	records, err := store.GetDutySlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duty slots: %w", err)
	}
	slots, err := db.SlotsToDomain(records)
	if err != nil {
		return nil, fmt.Errorf("failed to convert duty slots: %w", err)
	}
	return slots, nil
}

// loadSchedule fetches the saved schedule of week, or nil if there is none
func loadSchedule(ctx context.Context, store db.ScheduleStore, week roster.WeekRef) (*roster.DutySchedule, error) {
	records, err := store.GetDutySchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duty schedules: %w", err)
	}
	record := db.FindSchedule(records, week.Week, week.Year)
	if record == nil {
		return nil, nil
	}
	schedule, err := record.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("failed to convert duty schedule: %w", err)
	}
	return &schedule, nil
}

// teacherName returns the teacher's name, or the ID itself for unknown teachers
func teacherName(names map[string]string, teacherID string) string {
	if name, ok := names[teacherID]; ok {
		return name
	}
	return teacherID
}
