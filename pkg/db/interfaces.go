package db

import (
	"context"
	"time"

	"github.com/campuslife/club-awards/pkg/core/model"
)

// Database defines the interface for all database operations. The
// postgres.DB implementation backs it in production; services depend on
// narrower slices of this interface so tests can mock just what they use.
type Database interface {
	GetClubs(ctx context.Context) ([]model.Club, error)
	GetClub(ctx context.Context, clubID int64) (*model.Club, error)
	InsertClub(ctx context.Context, club *model.Club) error

	GetAwards(ctx context.Context) ([]model.Award, error)
	GetAward(ctx context.Context, awardID int64) (*model.Award, error)
	InsertAward(ctx context.Context, award *model.Award) error
	MarkWinnersDeclared(ctx context.Context, awardID int64, declaredAt time.Time) error

	GetNominations(ctx context.Context, awardID int64) ([]Nomination, error)
	InsertNomination(ctx context.Context, nomination *Nomination) error

	InsertVote(ctx context.Context, vote *Vote) error
	CountVotes(ctx context.Context, awardID int64) (map[int64]int, error)

	GetAllMetrics(ctx context.Context) ([]model.AggregateMetrics, error)
	UpsertMetrics(ctx context.Context, metrics model.AggregateMetrics) error

	GetWeights(ctx context.Context) (model.Weights, error)
	SetWeights(ctx context.Context, weights model.Weights) error

	GetDecision(ctx context.Context, awardID int64) (*Decision, error)
	UpsertDecision(ctx context.Context, decision *Decision) error
}
