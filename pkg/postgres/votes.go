package postgres

import (
	"context"
	"fmt"

	"github.com/campuslife/club-awards/pkg/db"
)

// InsertVote inserts a vote. When the vote carries a deduplication token
// and another vote with the same token already exists for the award, the
// partial unique index rejects it and db.ErrDuplicateVote is returned.
func (d *DB) InsertVote(ctx context.Context, vote *db.Vote) error {
	var token *string
	if vote.VoterToken != "" {
		token = &vote.VoterToken
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO feedback_vote (id, award_id, club_id, voter_token, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.AwardID, vote.ClubID, token, vote.CreatedAt.UTC())
	if isUniqueViolation(err, "feedback_vote_award_token_key") {
		return db.ErrDuplicateVote
	}
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// CountVotes returns the number of votes per club for one award
func (d *DB) CountVotes(ctx context.Context, awardID int64) (map[int64]int, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT club_id, COUNT(*)
		FROM feedback_vote
		WHERE award_id = $1
		GROUP BY club_id
	`, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes for award %d: %w", awardID, err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var clubID int64
		var count int
		if err := rows.Scan(&clubID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[clubID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote counts: %w", err)
	}

	return counts, nil
}
