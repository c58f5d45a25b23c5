package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuslife/club-awards/pkg/core/model"
	"github.com/campuslife/club-awards/pkg/db"
)

// GetClubs retrieves all clubs ordered by ascending ID. Ranking iterates
// clubs in this order, which fixes the tie order of equal scores.
func (d *DB) GetClubs(ctx context.Context) ([]model.Club, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, description, category, founded_year, member_count, achievements
		FROM club
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clubs: %w", err)
	}
	defer rows.Close()

	var clubs []model.Club
	for rows.Next() {
		var c model.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Category,
			&c.FoundedYear, &c.MemberCount, &c.Achievements); err != nil {
			return nil, fmt.Errorf("failed to scan club: %w", err)
		}
		clubs = append(clubs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clubs: %w", err)
	}

	return clubs, nil
}

// GetClub retrieves a single club by ID
func (d *DB) GetClub(ctx context.Context, clubID int64) (*model.Club, error) {
	var c model.Club
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, description, category, founded_year, member_count, achievements
		FROM club
		WHERE id = $1
	`, clubID).Scan(&c.ID, &c.Name, &c.Description, &c.Category,
		&c.FoundedYear, &c.MemberCount, &c.Achievements)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query club %d: %w", clubID, err)
	}
	return &c, nil
}

// InsertClub inserts a new club and fills in its generated ID
func (d *DB) InsertClub(ctx context.Context, club *model.Club) error {
	err := d.pool.QueryRow(ctx, `
		INSERT INTO club (name, description, category, founded_year, member_count, achievements)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, club.Name, club.Description, club.Category, club.FoundedYear,
		club.MemberCount, club.Achievements).Scan(&club.ID)
	if err != nil {
		return fmt.Errorf("failed to insert club: %w", err)
	}
	return nil
}
