package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// FormatTime formats a timestamp the way records store it
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseTime parses a stored timestamp; an empty string is the zero time
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// ToDomain converts the record to a roster.DutyArea
func (a DutyArea) ToDomain() (roster.DutyArea, error) {
	createdAt, err := ParseTime(a.CreatedAt)
	if err != nil {
		return roster.DutyArea{}, fmt.Errorf("duty area %s: %w", a.ID, err)
	}
	return roster.DutyArea{
		ID:          a.ID,
		Name:        a.Name,
		Floor:       a.Floor,
		Capacity:    a.Capacity,
		Priority:    a.Priority,
		IsActive:    a.IsActive,
		Description: a.Description,
		CreatedAt:   createdAt,
	}, nil
}

// DutyAreaFromDomain converts a roster.DutyArea to a record
func DutyAreaFromDomain(a roster.DutyArea) DutyArea {
	return DutyArea{
		ID:          a.ID,
		Name:        a.Name,
		Floor:       a.Floor,
		Capacity:    a.Capacity,
		Priority:    a.Priority,
		IsActive:    a.IsActive,
		Description: a.Description,
		CreatedAt:   FormatTime(a.CreatedAt),
	}
}

// ToDomain converts the record to a roster.DutySlot
func (s DutySlot) ToDomain() (roster.DutySlot, error) {
	createdAt, err := ParseTime(s.CreatedAt)
	if err != nil {
		return roster.DutySlot{}, fmt.Errorf("duty slot %s: %w", s.ID, err)
	}
	updatedAt, err := ParseTime(s.UpdatedAt)
	if err != nil {
		return roster.DutySlot{}, fmt.Errorf("duty slot %s: %w", s.ID, err)
	}
	return roster.DutySlot{
		ID:        s.ID,
		TeacherID: s.TeacherID,
		AreaID:    s.AreaID,
		Day:       roster.Weekday(s.Day),
		Week:      s.Week,
		Year:      s.Year,
		IsActive:  s.IsActive,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// DutySlotFromDomain converts a roster.DutySlot to a record
func DutySlotFromDomain(s roster.DutySlot) DutySlot {
	return DutySlot{
		ID:        s.ID,
		TeacherID: s.TeacherID,
		AreaID:    s.AreaID,
		Day:       string(s.Day),
		Week:      s.Week,
		Year:      s.Year,
		IsActive:  s.IsActive,
		CreatedAt: FormatTime(s.CreatedAt),
		UpdatedAt: FormatTime(s.UpdatedAt),
	}
}

// SlotsToDomain converts slot records, keeping their order
func SlotsToDomain(records []DutySlot) ([]roster.DutySlot, error) {
	slots := make([]roster.DutySlot, 0, len(records))
	for _, record := range records {
		slot, err := record.ToDomain()
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// AreasToDomain converts area records, keeping their order
func AreasToDomain(records []DutyArea) ([]roster.DutyArea, error) {
	areas := make([]roster.DutyArea, 0, len(records))
	for _, record := range records {
		area, err := record.ToDomain()
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// ToDomain converts the record to a roster.DutySchedule
func (s DutySchedule) ToDomain() (roster.DutySchedule, error) {
	grid := roster.Grid{}
	if s.Schedule != "" {
		if err := json.Unmarshal([]byte(s.Schedule), &grid); err != nil {
			return roster.DutySchedule{}, fmt.Errorf("duty schedule %s: invalid grid: %w", s.ID, err)
		}
	}
	createdAt, err := ParseTime(s.CreatedAt)
	if err != nil {
		return roster.DutySchedule{}, fmt.Errorf("duty schedule %s: %w", s.ID, err)
	}
	updatedAt, err := ParseTime(s.UpdatedAt)
	if err != nil {
		return roster.DutySchedule{}, fmt.Errorf("duty schedule %s: %w", s.ID, err)
	}
	return roster.DutySchedule{
		ID:        s.ID,
		Week:      s.Week,
		Year:      s.Year,
		Schedule:  grid,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// DutyScheduleFromDomain converts a roster.DutySchedule to a record
func DutyScheduleFromDomain(s roster.DutySchedule) (DutySchedule, error) {
	grid := s.Schedule
	if grid == nil {
		grid = roster.Grid{}
	}
	data, err := json.Marshal(grid)
	if err != nil {
		return DutySchedule{}, fmt.Errorf("failed to encode grid: %w", err)
	}
	return DutySchedule{
		ID:        s.ID,
		Week:      s.Week,
		Year:      s.Year,
		Schedule:  string(data),
		CreatedAt: FormatTime(s.CreatedAt),
		UpdatedAt: FormatTime(s.UpdatedAt),
	}, nil
}

// FindSchedule returns the schedule saved for (week, year), or nil
func FindSchedule(schedules []DutySchedule, week, year int) *DutySchedule {
	for i := range schedules {
		if schedules[i].Week == week && schedules[i].Year == year {
			return &schedules[i]
		}
	}
	return nil
}
