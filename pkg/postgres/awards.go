package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campuslife/club-awards/pkg/core/model"
	"github.com/campuslife/club-awards/pkg/db"
)

// GetAwards retrieves all awards ordered by ascending ID
func (d *DB) GetAwards(ctx context.Context) ([]model.Award, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, description, category, criteria, winners_declared, declared_at
		FROM award
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query awards: %w", err)
	}
	defer rows.Close()

	var awards []model.Award
	for rows.Next() {
		var a model.Award
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Category,
			&a.Criteria, &a.WinnersDeclared, &a.DeclaredAt); err != nil {
			return nil, fmt.Errorf("failed to scan award: %w", err)
		}
		awards = append(awards, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating awards: %w", err)
	}

	return awards, nil
}

// GetAward retrieves a single award by ID
func (d *DB) GetAward(ctx context.Context, awardID int64) (*model.Award, error) {
	var a model.Award
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, description, category, criteria, winners_declared, declared_at
		FROM award
		WHERE id = $1
	`, awardID).Scan(&a.ID, &a.Name, &a.Description, &a.Category,
		&a.Criteria, &a.WinnersDeclared, &a.DeclaredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query award %d: %w", awardID, err)
	}
	return &a, nil
}

// InsertAward inserts a new award and fills in its generated ID
func (d *DB) InsertAward(ctx context.Context, award *model.Award) error {
	err := d.pool.QueryRow(ctx, `
		INSERT INTO award (name, description, category, criteria)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, award.Name, award.Description, award.Category, award.Criteria).Scan(&award.ID)
	if err != nil {
		return fmt.Errorf("failed to insert award: %w", err)
	}
	return nil
}

// MarkWinnersDeclared flips the award to declared and records when
func (d *DB) MarkWinnersDeclared(ctx context.Context, awardID int64, declaredAt time.Time) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE award SET winners_declared = TRUE, declared_at = $2 WHERE id = $1
	`, awardID, declaredAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to mark winners declared for award %d: %w", awardID, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
