package db

import (
	"context"
	"fmt"

	"github.com/okulnobet/duty-roster/pkg/sheetssql"
)

// DB provides database operations using SheetsSQL.
//
// Tables are append-only: an update appends a new row with the same ID and reads
// keep the last row written for each ID, at the position of its first row.
type DB struct {
	ssql *sheetssql.DB
}

// Schema returns the SheetsSQL schema for every duty table
func Schema() (*sheetssql.Schema, error) {
	return sheetssql.SchemaFromModels(DutyArea{}, DutySlot{}, DutySchedule{})
}

// NewDB creates a new database instance
func NewDB(ssql *sheetssql.DB) *DB {
	return &DB{
		ssql: ssql,
	}
}

// GetDutyAreas retrieves all duty area records
func (db *DB) GetDutyAreas(ctx context.Context) ([]DutyArea, error) {
	areas, err := sheetssql.GetTableAs[DutyArea](db.ssql)
	if err != nil {
		return nil, fmt.Errorf("failed to get duty areas: %w", err)
	}
	return sheetssql.KeepLatest(areas, func(a DutyArea) string { return a.ID }), nil
}

// InsertDutyAreas inserts duty area records
func (db *DB) InsertDutyAreas(ctx context.Context, areas []DutyArea) error {
	if err := sheetssql.InsertModels(db.ssql, areas); err != nil {
		return fmt.Errorf("failed to insert duty areas: %w", err)
	}
	return nil
}

// GetDutySlots retrieves all duty slot records in insertion order
func (db *DB) GetDutySlots(ctx context.Context) ([]DutySlot, error) {
	slots, err := sheetssql.GetTableAs[DutySlot](db.ssql)
	if err != nil {
		return nil, fmt.Errorf("failed to get duty slots: %w", err)
	}
	return sheetssql.KeepLatest(slots, func(s DutySlot) string { return s.ID }), nil
}

// InsertDutySlots inserts duty slot records
func (db *DB) InsertDutySlots(ctx context.Context, slots []DutySlot) error {
	if err := sheetssql.InsertModels(db.ssql, slots); err != nil {
		return fmt.Errorf("failed to insert duty slots: %w", err)
	}
	return nil
}

// DeactivateDutySlots marks every active slot of (week, year) inactive by appending an inactive copy
func (db *DB) DeactivateDutySlots(ctx context.Context, week, year int, updatedAt string) error {
	slots, err := db.GetDutySlots(ctx)
	if err != nil {
		return err
	}

	var deactivated []DutySlot
	for _, slot := range slots {
		if slot.IsActive && slot.Week == week && slot.Year == year {
			slot.IsActive = false
			slot.UpdatedAt = updatedAt
			deactivated = append(deactivated, slot)
		}
	}

	if err := sheetssql.InsertModels(db.ssql, deactivated); err != nil {
		return fmt.Errorf("failed to deactivate duty slots: %w", err)
	}
	return nil
}

// GetDutySchedules retrieves all weekly schedule records
func (db *DB) GetDutySchedules(ctx context.Context) ([]DutySchedule, error) {
	schedules, err := sheetssql.GetTableAs[DutySchedule](db.ssql)
	if err != nil {
		return nil, fmt.Errorf("failed to get duty schedules: %w", err)
	}
	return sheetssql.KeepLatest(schedules, func(s DutySchedule) string { return s.ID }), nil
}

// InsertDutySchedule inserts a weekly schedule record
func (db *DB) InsertDutySchedule(ctx context.Context, schedule *DutySchedule) error {
	if err := sheetssql.InsertModel(db.ssql, *schedule); err != nil {
		return fmt.Errorf("failed to insert duty schedule: %w", err)
	}
	return nil
}

// UpdateDutySchedule replaces a weekly schedule record by appending its new version
func (db *DB) UpdateDutySchedule(ctx context.Context, schedule *DutySchedule) error {
	if err := sheetssql.InsertModel(db.ssql, *schedule); err != nil {
		return fmt.Errorf("failed to update duty schedule: %w", err)
	}
	return nil
}
