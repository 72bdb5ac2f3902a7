package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/db"
)

// GetDutySlots retrieves all duty slot records in insertion order
func (d *DB) GetDutySlots(ctx context.Context) ([]db.DutySlot, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, teacher_id, area_id, day, week, year, is_active, created_at, updated_at
		FROM duty_slot
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty slots: %w", err)
	}
	defer rows.Close()

	var slots []db.DutySlot
	for rows.Next() {
		var s db.DutySlot
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&s.ID, &s.TeacherID, &s.AreaID, &s.Day, &s.Week, &s.Year, &s.IsActive, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan duty slot: %w", err)
		}
		s.CreatedAt = db.FormatTime(createdAt)
		s.UpdatedAt = db.FormatTime(updatedAt)
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duty slots: %w", err)
	}

	return slots, nil
}

// InsertDutySlots inserts duty slot records in a single transaction
func (d *DB) InsertDutySlots(ctx context.Context, slots []db.DutySlot) error {
	if len(slots) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range slots {
		createdAt, err := timestampOrNow(s.CreatedAt)
		if err != nil {
			return fmt.Errorf("duty slot %s: %w", s.ID, err)
		}
		updatedAt, err := timestampOrNow(s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("duty slot %s: %w", s.ID, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO duty_slot (id, teacher_id, area_id, day, week, year, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, s.ID, s.TeacherID, s.AreaID, s.Day, s.Week, s.Year, s.IsActive, createdAt, updatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert duty slot: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeactivateDutySlots marks every active slot of (week, year) inactive
func (d *DB) DeactivateDutySlots(ctx context.Context, week, year int, updatedAt string) error {
	at, err := timestampOrNow(updatedAt)
	if err != nil {
		return err
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE duty_slot SET is_active = FALSE, updated_at = $3
		WHERE week = $1 AND year = $2 AND is_active
	`, week, year, at)
	if err != nil {
		return fmt.Errorf("failed to deactivate duty slots: %w", err)
	}

	d.logger.Debug("Deactivated duty slots", zap.Int("week", week), zap.Int("year", year), zap.Int64("count", tag.RowsAffected()))
	return nil
}
