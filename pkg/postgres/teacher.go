package postgres

import (
	"context"
	"fmt"

	"github.com/okulnobet/duty-roster/pkg/core/model"
)

// ListTeachers retrieves every teacher, ordered by name
func (d *DB) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, branch, level, status
		FROM teacher
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Branch, &t.Level, &t.Status); err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teachers: %w", err)
	}

	model.SortTeachersByName(teachers)
	return teachers, nil
}

// UpsertTeachers inserts teachers or overwrites existing ones with the same ID
func (d *DB) UpsertTeachers(ctx context.Context, teachers []model.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range teachers {
		_, err := tx.Exec(ctx, `
			INSERT INTO teacher (id, name, branch, level, status)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, branch = EXCLUDED.branch, level = EXCLUDED.level, status = EXCLUDED.status
		`, t.ID, t.Name, t.Branch, t.Level, t.Status)
		if err != nil {
			return fmt.Errorf("failed to upsert teacher %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
