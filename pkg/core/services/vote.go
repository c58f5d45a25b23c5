package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/eligibility"
	"github.com/campuslife/club-awards/pkg/core/model"
	"github.com/campuslife/club-awards/pkg/db"
)

// ErrIneligibleClub indicates the club does not satisfy the award's
// eligibility rules
var ErrIneligibleClub = errors.New("club is not eligible for this award")

// VoteStore defines the database operations needed for submitting a vote
type VoteStore interface {
	GetAward(ctx context.Context, awardID int64) (*model.Award, error)
	GetClub(ctx context.Context, clubID int64) (*model.Club, error)
	InsertVote(ctx context.Context, vote *db.Vote) error
}

// SubmitVote records one stakeholder vote for a club in an award.
// Votes for ineligible clubs are rejected with ErrIneligibleClub. When
// voterToken is non-empty, the storage layer's uniqueness constraint
// guarantees at most one vote per (award, token); a second submission
// returns db.ErrDuplicateVote with no state change.
func SubmitVote(ctx context.Context, store VoteStore, logger *zap.Logger, awardID, clubID int64, voterToken string, now time.Time) (*db.Vote, error) {
	award, err := store.GetAward(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch award: %w", err)
	}

	club, err := store.GetClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club: %w", err)
	}

	resolver := eligibility.NewDefaultResolver(now)
	if !resolver.Eligible(award.Name, *club) {
		logger.Warn("Rejected vote for ineligible club",
			zap.Int64("award_id", award.ID),
			zap.Int64("club_id", club.ID))
		return nil, ErrIneligibleClub
	}

	vote := &db.Vote{
		ID:         uuid.New().String(),
		AwardID:    award.ID,
		ClubID:     club.ID,
		VoterToken: voterToken,
		CreatedAt:  now,
	}

	if err := store.InsertVote(ctx, vote); err != nil {
		if errors.Is(err, db.ErrDuplicateVote) {
			logger.Warn("Rejected duplicate vote",
				zap.Int64("award_id", award.ID),
				zap.Int64("club_id", club.ID))
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	logger.Info("Vote recorded",
		zap.String("vote_id", vote.ID),
		zap.Int64("award_id", award.ID),
		zap.Int64("club_id", club.ID),
		zap.Bool("with_token", voterToken != ""))

	return vote, nil
}
