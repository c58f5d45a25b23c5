package postgres

import (
	"context"
	"fmt"

	"github.com/campuslife/club-awards/pkg/db"
)

// GetNominations retrieves all nominations for one award
func (d *DB) GetNominations(ctx context.Context, awardID int64) ([]db.Nomination, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, club_id, award_id, reason, submitted_by, submitted_at, is_approved
		FROM nomination
		WHERE award_id = $1
		ORDER BY submitted_at
	`, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query nominations for award %d: %w", awardID, err)
	}
	defer rows.Close()

	var nominations []db.Nomination
	for rows.Next() {
		var n db.Nomination
		if err := rows.Scan(&n.ID, &n.ClubID, &n.AwardID, &n.Reason,
			&n.SubmittedBy, &n.SubmittedAt, &n.Approved); err != nil {
			return nil, fmt.Errorf("failed to scan nomination: %w", err)
		}
		nominations = append(nominations, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nominations: %w", err)
	}

	return nominations, nil
}

// InsertNomination inserts a nomination. The (club, award) pair is unique;
// a second nomination for the same pair returns db.ErrDuplicateNomination.
func (d *DB) InsertNomination(ctx context.Context, nomination *db.Nomination) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO nomination (id, club_id, award_id, reason, submitted_by, submitted_at, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, nomination.ID, nomination.ClubID, nomination.AwardID, nomination.Reason,
		nomination.SubmittedBy, nomination.SubmittedAt.UTC(), nomination.Approved)
	if isUniqueViolation(err, "nomination_club_award_key") {
		return db.ErrDuplicateNomination
	}
	if err != nil {
		return fmt.Errorf("failed to insert nomination: %w", err)
	}
	return nil
}
