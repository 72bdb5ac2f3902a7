package db

import "context"

// AreaStore defines the database operations on duty areas
type AreaStore interface {
	GetDutyAreas(ctx context.Context) ([]DutyArea, error)
	InsertDutyAreas(ctx context.Context, areas []DutyArea) error
}

// SlotStore defines the database operations on duty slots.
// GetDutySlots returns slots in insertion order.
type SlotStore interface {
	GetDutySlots(ctx context.Context) ([]DutySlot, error)
	InsertDutySlots(ctx context.Context, slots []DutySlot) error
	DeactivateDutySlots(ctx context.Context, week, year int, updatedAt string) error
}

// ScheduleStore defines the database operations on weekly schedules
type ScheduleStore interface {
	GetDutySchedules(ctx context.Context) ([]DutySchedule, error)
	InsertDutySchedule(ctx context.Context, schedule *DutySchedule) error
	UpdateDutySchedule(ctx context.Context, schedule *DutySchedule) error
}

// Database defines the interface for all database operations.
// Both the SheetsSQL-backed db.DB and postgres.DB implement this interface.
type Database interface {
	AreaStore
	SlotStore
	ScheduleStore
}
