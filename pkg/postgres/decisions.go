package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuslife/club-awards/pkg/db"
)

// GetDecision retrieves the decision for one award, or db.ErrNotFound if
// no winner has been recorded
func (d *DB) GetDecision(ctx context.Context, awardID int64) (*db.Decision, error) {
	var dec db.Decision
	err := d.pool.QueryRow(ctx, `
		SELECT id, award_id, club_id, reason, decided_by, decided_at
		FROM award_decision
		WHERE award_id = $1
	`, awardID).Scan(&dec.ID, &dec.AwardID, &dec.ClubID, &dec.Reason, &dec.DecidedBy, &dec.DecidedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query decision for award %d: %w", awardID, err)
	}
	return &dec, nil
}

// UpsertDecision writes the decision for an award, overwriting any
// previous decision in place. award_id is the conflict key, so an award
// never accumulates more than one decision row.
func (d *DB) UpsertDecision(ctx context.Context, decision *db.Decision) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO award_decision (id, award_id, club_id, reason, decided_by, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (award_id) DO UPDATE SET
			club_id = EXCLUDED.club_id,
			reason = EXCLUDED.reason,
			decided_by = EXCLUDED.decided_by,
			decided_at = EXCLUDED.decided_at
	`, decision.ID, decision.AwardID, decision.ClubID, decision.Reason,
		decision.DecidedBy, decision.DecidedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert decision for award %d: %w", decision.AwardID, err)
	}
	return nil
}
