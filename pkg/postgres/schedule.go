package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/okulnobet/duty-roster/pkg/db"
)

// GetDutySchedules retrieves all weekly schedule records
func (d *DB) GetDutySchedules(ctx context.Context) ([]db.DutySchedule, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, week, year, schedule::text, created_at, updated_at
		FROM duty_schedule
		ORDER BY year, week
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty schedules: %w", err)
	}
	defer rows.Close()

	var schedules []db.DutySchedule
	for rows.Next() {
		var s db.DutySchedule
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&s.ID, &s.Week, &s.Year, &s.Schedule, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan duty schedule: %w", err)
		}
		s.CreatedAt = db.FormatTime(createdAt)
		s.UpdatedAt = db.FormatTime(updatedAt)
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duty schedules: %w", err)
	}

	return schedules, nil
}

// InsertDutySchedule inserts a weekly schedule record
func (d *DB) InsertDutySchedule(ctx context.Context, schedule *db.DutySchedule) error {
	createdAt, err := timestampOrNow(schedule.CreatedAt)
	if err != nil {
		return fmt.Errorf("duty schedule %s: %w", schedule.ID, err)
	}
	updatedAt, err := timestampOrNow(schedule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("duty schedule %s: %w", schedule.ID, err)
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO duty_schedule (id, week, year, schedule, created_at, updated_at)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6)
	`, schedule.ID, schedule.Week, schedule.Year, schedule.Schedule, createdAt, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert duty schedule: %w", err)
	}
	return nil
}

// UpdateDutySchedule replaces the grid of an existing weekly schedule record
func (d *DB) UpdateDutySchedule(ctx context.Context, schedule *db.DutySchedule) error {
	updatedAt, err := timestampOrNow(schedule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("duty schedule %s: %w", schedule.ID, err)
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE duty_schedule SET schedule = $2::jsonb, updated_at = $3
		WHERE id = $1
	`, schedule.ID, schedule.Schedule, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update duty schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update duty schedule: no schedule with id %s", schedule.ID)
	}
	return nil
}
