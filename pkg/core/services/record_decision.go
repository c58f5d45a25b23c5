package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/eligibility"
	"github.com/campuslife/club-awards/pkg/core/model"
	"github.com/campuslife/club-awards/pkg/db"
)

// RecordDecisionStore defines the database operations needed for recording
// an award decision
type RecordDecisionStore interface {
	GetAward(ctx context.Context, awardID int64) (*model.Award, error)
	GetClub(ctx context.Context, clubID int64) (*model.Club, error)
	UpsertDecision(ctx context.Context, decision *db.Decision) error
	MarkWinnersDeclared(ctx context.Context, awardID int64, declaredAt time.Time) error
}

// RecordDecisionRequest carries the admin's winner selection for an award.
// ValidateEligibility is opt-in: by default the chosen club is NOT checked
// against the award's eligible set, so a decision can name any club. That
// matches the historical behaviour; callers who want the guard set the
// flag.
type RecordDecisionRequest struct {
	AwardID             int64
	ClubID              int64
	Reason              string
	DecidedBy           string
	ValidateEligibility bool
	Now                 time.Time
}

// RecordDecision upserts the single decision row for the award and flips
// the award to declared. Re-deciding an already-declared award overwrites
// the previous decision in place and refreshes the declared timestamp.
func RecordDecision(ctx context.Context, store RecordDecisionStore, logger *zap.Logger, req RecordDecisionRequest) (*db.Decision, error) {
	award, err := store.GetAward(ctx, req.AwardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch award: %w", err)
	}

	club, err := store.GetClub(ctx, req.ClubID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club: %w", err)
	}

	if req.ValidateEligibility {
		resolver := eligibility.NewDefaultResolver(req.Now)
		if !resolver.Eligible(award.Name, *club) {
			return nil, ErrIneligibleClub
		}
	}

	if award.WinnersDeclared {
		logger.Info("Overwriting existing decision",
			zap.Int64("award_id", award.ID),
			zap.Int64("new_club_id", club.ID))
	}

	decision := &db.Decision{
		ID:        uuid.New().String(),
		AwardID:   award.ID,
		ClubID:    club.ID,
		Reason:    req.Reason,
		DecidedBy: req.DecidedBy,
		DecidedAt: req.Now,
	}

	if err := store.UpsertDecision(ctx, decision); err != nil {
		return nil, fmt.Errorf("failed to upsert decision: %w", err)
	}

	if err := store.MarkWinnersDeclared(ctx, award.ID, req.Now); err != nil {
		return nil, fmt.Errorf("failed to mark winners declared: %w", err)
	}

	logger.Info("Decision recorded",
		zap.Int64("award_id", award.ID),
		zap.Int64("club_id", club.ID),
		zap.String("decided_by", req.DecidedBy))

	return decision, nil
}
