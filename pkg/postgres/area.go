package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/okulnobet/duty-roster/pkg/db"
)

// GetDutyAreas retrieves all duty area records in creation order
func (d *DB) GetDutyAreas(ctx context.Context) ([]db.DutyArea, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, floor, capacity, priority, is_active, description, created_at
		FROM duty_area
		ORDER BY created_at, priority
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty areas: %w", err)
	}
	defer rows.Close()

	var areas []db.DutyArea
	for rows.Next() {
		var a db.DutyArea
		var createdAt time.Time
		if err := rows.Scan(&a.ID, &a.Name, &a.Floor, &a.Capacity, &a.Priority, &a.IsActive, &a.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan duty area: %w", err)
		}
		a.CreatedAt = db.FormatTime(createdAt)
		areas = append(areas, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duty areas: %w", err)
	}

	return areas, nil
}

// InsertDutyAreas inserts duty area records in a single transaction
func (d *DB) InsertDutyAreas(ctx context.Context, areas []db.DutyArea) error {
	if len(areas) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range areas {
		createdAt, err := timestampOrNow(a.CreatedAt)
		if err != nil {
			return fmt.Errorf("duty area %s: %w", a.ID, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO duty_area (id, name, floor, capacity, priority, is_active, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, a.ID, a.Name, a.Floor, a.Capacity, a.Priority, a.IsActive, a.Description, createdAt)
		if err != nil {
			return fmt.Errorf("failed to insert duty area: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
