package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/club-awards/pkg/core/model"
)

func TestRank_Empty(t *testing.T) {
	entries := Rank([]Candidate{}, model.DefaultWeights())
	assert.Empty(t, entries)
}

func TestRank_SocialAndFeedbackOnly(t *testing.T) {
	// Likes and reach are equal across the pool so they normalize to 0;
	// posts and votes drive the whole score
	candidates := []Candidate{
		{
			Club:    model.Club{ID: 1, Name: "Chess Club"},
			Metrics: model.AggregateMetrics{ClubID: 1, SocialPosts: 10, SocialLikes: 500},
			Votes:   0,
		},
		{
			Club:    model.Club{ID: 2, Name: "Dance Club"},
			Metrics: model.AggregateMetrics{ClubID: 2, SocialPosts: 50, SocialLikes: 500},
			Votes:   1,
		},
		{
			Club:    model.Club{ID: 3, Name: "Coding Club"},
			Metrics: model.AggregateMetrics{ClubID: 3, SocialPosts: 100, SocialLikes: 500},
			Votes:   2,
		},
	}
	weights := model.Weights{Social: 0.3, Feedback: 0.15}

	entries := Rank(candidates, weights)
	require.Len(t, entries, 3)

	assert.Equal(t, int64(3), entries[0].Club.ID)
	assert.Equal(t, int64(2), entries[1].Club.ID)
	assert.Equal(t, int64(1), entries[2].Club.ID)

	// club 3: social = (1+0+0)/3, feedback = 1
	assert.InDelta(t, 0.3*(1.0/3.0)+0.15, entries[0].Score, 1e-4)
	// club 2: posts normalize to 40/90, votes to 0.5
	assert.InDelta(t, 0.3*(40.0/90.0/3.0)+0.15*0.5, entries[1].Score, 1e-4)
	assert.Equal(t, 0.0, entries[2].Score)

	assert.Equal(t, []int{1, 2, 3}, ranks(entries))
}

func TestRank_MonotoneInVotes(t *testing.T) {
	base := func(votes int) Candidate {
		return Candidate{
			Club:    model.Club{ID: int64(votes + 1)},
			Metrics: model.AggregateMetrics{SocialPosts: 5, Messages: 100},
			Votes:   votes,
		}
	}
	entries := Rank([]Candidate{base(0), base(5), base(10)}, model.DefaultWeights())

	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
		assert.Greater(t, entries[i-1].Raw.Votes, entries[i].Raw.Votes)
	}
}

func TestRank_TiesKeepInputOrderWithDistinctRanks(t *testing.T) {
	// Identical metrics normalize to all zeros, every score ties at 0
	candidates := []Candidate{
		{Club: model.Club{ID: 1}, Metrics: model.AggregateMetrics{SocialPosts: 5}},
		{Club: model.Club{ID: 2}, Metrics: model.AggregateMetrics{SocialPosts: 5}},
		{Club: model.Club{ID: 3}, Metrics: model.AggregateMetrics{SocialPosts: 5}},
	}

	entries := Rank(candidates, model.DefaultWeights())
	require.Len(t, entries, 3)

	assert.Equal(t, int64(1), entries[0].Club.ID)
	assert.Equal(t, int64(2), entries[1].Club.ID)
	assert.Equal(t, int64(3), entries[2].Club.ID)
	assert.Equal(t, []int{1, 2, 3}, ranks(entries))
}

func TestRank_Deterministic(t *testing.T) {
	candidates := []Candidate{
		{Club: model.Club{ID: 1}, Metrics: model.AggregateMetrics{SocialPosts: 3, Messages: 40, MessageSentiment: 0.2}, Votes: 2},
		{Club: model.Club{ID: 2}, Metrics: model.AggregateMetrics{SocialPosts: 9, Messages: 10, MessageSentiment: -0.1}, Votes: 5},
		{Club: model.Club{ID: 3}, Metrics: model.AggregateMetrics{SocialPosts: 6, Messages: 80, MessageSentiment: 0.5}, Votes: 0},
	}

	first := Rank(candidates, model.DefaultWeights())
	second := Rank(candidates, model.DefaultWeights())
	assert.Equal(t, first, second)
}

func TestRank_MessagingComponentBlend(t *testing.T) {
	// Volume dominates sentiment 70/30 inside the messaging component
	candidates := []Candidate{
		{Club: model.Club{ID: 1}, Metrics: model.AggregateMetrics{Messages: 0, MessageSentiment: 1.0}},
		{Club: model.Club{ID: 2}, Metrics: model.AggregateMetrics{Messages: 100, MessageSentiment: 0.0}},
	}
	weights := model.Weights{Messaging: 1.0}

	entries := Rank(candidates, weights)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(2), entries[0].Club.ID)
	assert.InDelta(t, 0.7, entries[0].Components.Messaging, 1e-9)
	assert.InDelta(t, 0.3, entries[1].Components.Messaging, 1e-9)
}

func TestRank_ScoreRoundedToFourDigits(t *testing.T) {
	candidates := []Candidate{
		{Club: model.Club{ID: 1}, Metrics: model.AggregateMetrics{SocialPosts: 1}},
		{Club: model.Club{ID: 2}, Metrics: model.AggregateMetrics{SocialPosts: 2}},
		{Club: model.Club{ID: 3}, Metrics: model.AggregateMetrics{SocialPosts: 4}},
	}

	entries := Rank(candidates, model.DefaultWeights())
	for _, entry := range entries {
		assert.Equal(t, round4(entry.Score), entry.Score)
		assert.Equal(t, round4(entry.Components.Social), entry.Components.Social)
	}
}

func ranks(entries []RankingEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Rank
	}
	return out
}
