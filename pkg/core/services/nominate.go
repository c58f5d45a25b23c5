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

// NominateStore defines the database operations needed for nominations
type NominateStore interface {
	GetClubs(ctx context.Context) ([]model.Club, error)
	GetAwards(ctx context.Context) ([]model.Award, error)
	InsertNomination(ctx context.Context, nomination *db.Nomination) error
}

// AutoNominateResult summarises an auto-nomination run
type AutoNominateResult struct {
	Created int
	Skipped int
}

// AutoNominate creates a pre-approved nomination for every (award,
// eligible club) pair that does not have one yet. Existing nominations are
// skipped via the storage layer's (club, award) uniqueness, so concurrent
// runs cannot create duplicates.
func AutoNominate(ctx context.Context, store NominateStore, logger *zap.Logger, now time.Time) (*AutoNominateResult, error) {
	awards, err := store.GetAwards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch awards: %w", err)
	}

	clubs, err := store.GetClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}

	resolver := eligibility.NewDefaultResolver(now)
	result := &AutoNominateResult{}

	for _, award := range awards {
		for _, club := range resolver.EligibleClubs(award.Name, clubs) {
			nomination := &db.Nomination{
				ID:          uuid.New().String(),
				ClubID:      club.ID,
				AwardID:     award.ID,
				Reason:      fmt.Sprintf("Auto-nominated based on eligibility: '%s' criteria matched by %s.", award.Name, club.Name),
				SubmittedAt: now,
				Approved:    true,
			}

			err := store.InsertNomination(ctx, nomination)
			if errors.Is(err, db.ErrDuplicateNomination) {
				result.Skipped++
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to nominate club %d for award %d: %w", club.ID, award.ID, err)
			}
			result.Created++
		}
	}

	logger.Info("Auto-nomination complete",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

// SubmitNominationStore defines the database operations needed for a
// manual nomination
type SubmitNominationStore interface {
	GetAward(ctx context.Context, awardID int64) (*model.Award, error)
	GetClub(ctx context.Context, clubID int64) (*model.Club, error)
	InsertNomination(ctx context.Context, nomination *db.Nomination) error
}

// SubmitNomination records a manual nomination of a club for an award.
// Nominations are accepted immediately; a duplicate for the same (club,
// award) pair returns db.ErrDuplicateNomination with no state change.
func SubmitNomination(ctx context.Context, store SubmitNominationStore, logger *zap.Logger, clubID, awardID int64, reason, submittedBy string, now time.Time) (*db.Nomination, error) {
	award, err := store.GetAward(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch award: %w", err)
	}

	club, err := store.GetClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club: %w", err)
	}

	nomination := &db.Nomination{
		ID:          uuid.New().String(),
		ClubID:      club.ID,
		AwardID:     award.ID,
		Reason:      reason,
		SubmittedBy: submittedBy,
		SubmittedAt: now,
		Approved:    true,
	}

	if err := store.InsertNomination(ctx, nomination); err != nil {
		if errors.Is(err, db.ErrDuplicateNomination) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert nomination: %w", err)
	}

	logger.Info("Nomination recorded",
		zap.String("nomination_id", nomination.ID),
		zap.Int64("club_id", club.ID),
		zap.Int64("award_id", award.ID))

	return nomination, nil
}
