package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/eligibility"
	"github.com/campuslife/club-awards/pkg/core/model"
	"github.com/campuslife/club-awards/pkg/core/scoring"
)

// RankAwardStore defines the database operations needed for ranking an award
type RankAwardStore interface {
	GetAward(ctx context.Context, awardID int64) (*model.Award, error)
	GetClubs(ctx context.Context) ([]model.Club, error)
	GetAllMetrics(ctx context.Context) ([]model.AggregateMetrics, error)
	CountVotes(ctx context.Context, awardID int64) (map[int64]int, error)
	GetWeights(ctx context.Context) (model.Weights, error)
}

// RankAwardResult contains the ranked candidates for one award
type RankAwardResult struct {
	Award      *model.Award
	Weights    model.Weights
	Entries    []scoring.RankingEntry
	TotalVotes int
}

// RankAward computes the ranking for one award: the eligibility rules
// restrict the candidate pool, each candidate's metrics and fresh vote
// count are normalized across the pool, and the weighted composite score
// orders the result. An award with no eligible clubs yields an empty
// ranking, not an error. The weights are read once per call; ranking
// itself has no failure modes beyond store access.
func RankAward(ctx context.Context, store RankAwardStore, logger *zap.Logger, awardID int64, now time.Time) (*RankAwardResult, error) {
	award, err := store.GetAward(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch award: %w", err)
	}

	logger.Info("Ranking award", zap.Int64("award_id", award.ID), zap.String("award", award.Name))

	clubs, err := store.GetClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}

	resolver := eligibility.NewDefaultResolver(now)
	eligible := resolver.EligibleClubs(award.Name, clubs)
	logger.Debug("Resolved eligible clubs",
		zap.Int("total", len(clubs)),
		zap.Int("eligible", len(eligible)))

	if len(eligible) == 0 {
		return &RankAwardResult{Award: award, Entries: []scoring.RankingEntry{}}, nil
	}

	// Candidates are scored in ascending club ID order so tied scores
	// keep a reproducible order under the stable sort
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].ID < eligible[j].ID })

	allMetrics, err := store.GetAllMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}
	metricsByClub := make(map[int64]model.AggregateMetrics, len(allMetrics))
	for _, m := range allMetrics {
		metricsByClub[m.ClubID] = m
	}

	voteCounts, err := store.CountVotes(ctx, award.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	weights, err := store.GetWeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weights: %w", err)
	}

	candidates := make([]scoring.Candidate, len(eligible))
	totalVotes := 0
	for i, club := range eligible {
		metrics := metricsByClub[club.ID] // zero metrics if absent from all sources
		metrics.ClubID = club.ID
		candidates[i] = scoring.Candidate{
			Club:    club,
			Metrics: metrics,
			Votes:   voteCounts[club.ID],
		}
		totalVotes += voteCounts[club.ID]
	}

	entries := scoring.Rank(candidates, weights)

	logger.Info("Ranking computed",
		zap.Int64("award_id", award.ID),
		zap.Int("candidates", len(entries)),
		zap.Int("total_votes", totalVotes))

	return &RankAwardResult{
		Award:      award,
		Weights:    weights,
		Entries:    entries,
		TotalVotes: totalVotes,
	}, nil
}
