package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/metrics"
	"github.com/campuslife/club-awards/pkg/core/model"
)

// SourceLoader loads the raw metric snapshots for one aggregation run.
// Implemented by sources.CSVLoader and the sheets client adapter.
type SourceLoader interface {
	Load(ctx context.Context) (metrics.SourceSet, error)
}

// RefreshMetricsStore defines the database operations needed for refreshing
// aggregate metrics
type RefreshMetricsStore interface {
	GetClubs(ctx context.Context) ([]model.Club, error)
	UpsertMetrics(ctx context.Context, m model.AggregateMetrics) error
}

// RefreshMetricsResult summarises an aggregation run
type RefreshMetricsResult struct {
	ClubsUpdated   int
	UnknownClubIDs []int64
}

// RefreshMetrics re-aggregates the source snapshots into one metrics row
// per club and upserts every club's row, zeroing clubs absent from all
// sources. A load error aborts the whole run before anything is written,
// so partial aggregates never reach storage. Source rows referencing
// unknown club IDs are dropped and reported.
func RefreshMetrics(ctx context.Context, store RefreshMetricsStore, logger *zap.Logger, loader SourceLoader) (*RefreshMetricsResult, error) {
	clubs, err := store.GetClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}

	src, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load metric sources: %w", err)
	}

	logger.Debug("Loaded metric sources",
		zap.Int("social_rows", len(src.Social)),
		zap.Int("messaging_rows", len(src.Messaging)),
		zap.Int("attendance_rows", len(src.Attendance)),
		zap.Int("award_win_rows", len(src.AwardWins)),
		zap.Int("clubs_with_reports", len(src.Reports)))

	aggregated := metrics.Aggregate(src)

	known := make(map[int64]bool, len(clubs))
	for _, club := range clubs {
		known[club.ID] = true
	}

	result := &RefreshMetricsResult{}
	for clubID := range aggregated {
		if !known[clubID] {
			result.UnknownClubIDs = append(result.UnknownClubIDs, clubID)
		}
	}
	if len(result.UnknownClubIDs) > 0 {
		logger.Warn("Sources reference unknown clubs, dropping their rows",
			zap.Int64s("club_ids", result.UnknownClubIDs))
	}

	for _, club := range clubs {
		m, ok := aggregated[club.ID]
		if !ok {
			m = model.AggregateMetrics{ClubID: club.ID}
		}
		if err := store.UpsertMetrics(ctx, m); err != nil {
			return nil, fmt.Errorf("failed to store metrics for club %d: %w", club.ID, err)
		}
		result.ClubsUpdated++
	}

	logger.Info("Aggregate metrics refreshed", zap.Int("clubs_updated", result.ClubsUpdated))

	return result, nil
}
