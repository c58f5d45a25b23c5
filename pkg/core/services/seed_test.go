package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/model"
)

// mockSeedStore implements SeedStore
type mockSeedStore struct {
	clubs   []model.Club
	awards  []model.Award
	weights *model.Weights
}

func (m *mockSeedStore) GetClubs(ctx context.Context) ([]model.Club, error) {
	return m.clubs, nil
}

func (m *mockSeedStore) InsertClub(ctx context.Context, club *model.Club) error {
	club.ID = int64(len(m.clubs) + 1)
	m.clubs = append(m.clubs, *club)
	return nil
}

func (m *mockSeedStore) GetAwards(ctx context.Context) ([]model.Award, error) {
	return m.awards, nil
}

func (m *mockSeedStore) InsertAward(ctx context.Context, award *model.Award) error {
	award.ID = int64(len(m.awards) + 1)
	m.awards = append(m.awards, *award)
	return nil
}

func (m *mockSeedStore) SetWeights(ctx context.Context, weights model.Weights) error {
	m.weights = &weights
	return nil
}

func TestSeed_FreshDatabase(t *testing.T) {
	store := &mockSeedStore{}

	result, err := Seed(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 12, result.ClubsCreated)
	assert.Equal(t, 8, result.AwardsCreated)
	assert.True(t, result.WeightsCreated)

	require.NotNil(t, store.weights)
	assert.Equal(t, model.DefaultWeights(), *store.weights)
}

func TestSeed_ExistingClubsNotDuplicated(t *testing.T) {
	store := &mockSeedStore{
		clubs:  []model.Club{{ID: 1, Name: "Coding Club"}},
		awards: []model.Award{{ID: 1, Name: "Best Technical Club"}},
	}

	result, err := Seed(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	assert.Zero(t, result.ClubsCreated)
	assert.Zero(t, result.AwardsCreated)
	assert.False(t, result.WeightsCreated)

	// A customised weight vector must survive reseeding
	assert.Nil(t, store.weights)
}

func TestSeed_AwardsBackfilledWhenOnlyClubsExist(t *testing.T) {
	store := &mockSeedStore{
		clubs: []model.Club{{ID: 1, Name: "Coding Club"}},
	}

	result, err := Seed(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	assert.Zero(t, result.ClubsCreated)
	assert.Equal(t, 8, result.AwardsCreated)
	assert.False(t, result.WeightsCreated)
}
