package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/model"
	"github.com/campuslife/club-awards/pkg/db"
)

// mockNominateStore implements NominateStore and SubmitNominationStore
type mockNominateStore struct {
	clubs    []model.Club
	awards   []model.Award
	existing map[string]bool // "clubID/awardID" pairs already nominated
	inserted []*db.Nomination
}

func (m *mockNominateStore) GetClubs(ctx context.Context) ([]model.Club, error) {
	return m.clubs, nil
}

func (m *mockNominateStore) GetAwards(ctx context.Context) ([]model.Award, error) {
	return m.awards, nil
}

func (m *mockNominateStore) GetAward(ctx context.Context, awardID int64) (*model.Award, error) {
	for i := range m.awards {
		if m.awards[i].ID == awardID {
			return &m.awards[i], nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockNominateStore) GetClub(ctx context.Context, clubID int64) (*model.Club, error) {
	for i := range m.clubs {
		if m.clubs[i].ID == clubID {
			return &m.clubs[i], nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockNominateStore) InsertNomination(ctx context.Context, nomination *db.Nomination) error {
	key := fmt.Sprintf("%d/%d", nomination.ClubID, nomination.AwardID)
	if m.existing[key] {
		return db.ErrDuplicateNomination
	}
	if m.existing == nil {
		m.existing = make(map[string]bool)
	}
	m.existing[key] = true
	m.inserted = append(m.inserted, nomination)
	return nil
}

func TestAutoNominate_NominatesEligiblePairs(t *testing.T) {
	store := &mockNominateStore{
		clubs: []model.Club{
			{ID: 1, Name: "Coding Club", Category: model.CategoryTechnical},
			{ID: 2, Name: "Dance Club", Category: model.CategoryCultural},
		},
		awards: []model.Award{
			{ID: 10, Name: "Best Technical Club"},
			{ID: 11, Name: "Best Cultural Club"},
		},
	}

	result, err := AutoNominate(context.Background(), store, zap.NewNop(), testNow)
	require.NoError(t, err)

	// Each club matches exactly one of the two awards
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, store.inserted, 2)

	first := store.inserted[0]
	assert.True(t, first.Approved)
	assert.Contains(t, first.Reason, "Coding Club")
	assert.Contains(t, first.Reason, "Best Technical Club")
}

func TestAutoNominate_SkipsExistingNominations(t *testing.T) {
	store := &mockNominateStore{
		clubs: []model.Club{
			{ID: 1, Name: "Coding Club", Category: model.CategoryTechnical},
			{ID: 2, Name: "Robotics Club", Category: model.CategoryTechnical},
		},
		awards: []model.Award{
			{ID: 10, Name: "Best Technical Club"},
		},
		existing: map[string]bool{"1/10": true},
	}

	result, err := AutoNominate(context.Background(), store, zap.NewNop(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
}

func TestAutoNominate_Idempotent(t *testing.T) {
	store := &mockNominateStore{
		clubs: []model.Club{
			{ID: 1, Name: "Coding Club", Category: model.CategoryTechnical},
		},
		awards: []model.Award{
			{ID: 10, Name: "Best Technical Club"},
		},
	}

	first, err := AutoNominate(context.Background(), store, zap.NewNop(), testNow)
	require.NoError(t, err)
	second, err := AutoNominate(context.Background(), store, zap.NewNop(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Created)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Skipped)
}

func TestSubmitNomination_Records(t *testing.T) {
	store := &mockNominateStore{
		clubs:  []model.Club{{ID: 1, Name: "Coding Club", Category: model.CategoryTechnical}},
		awards: []model.Award{{ID: 10, Name: "Best Technical Club"}},
	}

	nomination, err := SubmitNomination(context.Background(), store, zap.NewNop(), 1, 10, "Great hackathons", "Alex", testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, nomination.ID)
	assert.Equal(t, "Great hackathons", nomination.Reason)
	assert.Equal(t, "Alex", nomination.SubmittedBy)
	assert.Equal(t, testNow, nomination.SubmittedAt)
	assert.True(t, nomination.Approved)
}

func TestSubmitNomination_DuplicateRejected(t *testing.T) {
	store := &mockNominateStore{
		clubs:    []model.Club{{ID: 1, Name: "Coding Club", Category: model.CategoryTechnical}},
		awards:   []model.Award{{ID: 10, Name: "Best Technical Club"}},
		existing: map[string]bool{"1/10": true},
	}

	_, err := SubmitNomination(context.Background(), store, zap.NewNop(), 1, 10, "", "", testNow)
	assert.ErrorIs(t, err, db.ErrDuplicateNomination)
}

func TestSubmitNomination_UnknownAward(t *testing.T) {
	store := &mockNominateStore{
		clubs: []model.Club{{ID: 1, Name: "Coding Club"}},
	}

	_, err := SubmitNomination(context.Background(), store, zap.NewNop(), 1, 99, "", "", testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrNotFound)
}
