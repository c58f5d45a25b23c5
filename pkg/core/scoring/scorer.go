// Package scoring turns aggregate metrics and vote counts into a ranked
// list of award candidates.
//
// Each raw metric is min-max normalized across the candidate set, the six
// score components are combined as a weighted sum, and candidates are
// sorted by descending score. The sort is stable, so candidates must be
// supplied in a fixed order (ascending club ID) for tie order to be
// reproducible across calls.
package scoring

import (
	"math"
	"sort"

	"github.com/campuslife/club-awards/pkg/core/model"
)

// Candidate is one eligible club with its metrics and this award's fresh
// vote count
type Candidate struct {
	Club    model.Club
	Metrics model.AggregateMetrics
	Votes   int
}

// RawMetrics echoes the unnormalized inputs behind a ranking entry
type RawMetrics struct {
	Posts       int
	Likes       int
	Reach       int
	Messages    int
	Sentiment   float64
	AwardsWon   int
	Votes       int
	Attendance  int
	ReportScore float64
}

// Components holds the six normalized score components, each rounded to 4
// decimal digits
type Components struct {
	Social     float64
	Messaging  float64
	Awards     float64
	Feedback   float64
	Attendance float64
	Reports    float64
}

// RankingEntry is one row of an award ranking
type RankingEntry struct {
	Club       model.Club
	Score      float64
	Components Components
	Raw        RawMetrics
	Rank       int
}

// Rank computes the composite score for each candidate and returns the
// candidates ordered by descending score with 1-based sequential ranks.
// Ties keep the relative order of the input, so callers must pass
// candidates in ascending club ID order. An empty candidate set yields an
// empty ranking.
func Rank(candidates []Candidate, weights model.Weights) []RankingEntry {
	if len(candidates) == 0 {
		return []RankingEntry{}
	}

	n := len(candidates)
	posts := make([]float64, n)
	likes := make([]float64, n)
	reach := make([]float64, n)
	messages := make([]float64, n)
	sentiment := make([]float64, n)
	awardsWon := make([]float64, n)
	votes := make([]float64, n)
	attendance := make([]float64, n)
	reports := make([]float64, n)

	for i, c := range candidates {
		posts[i] = float64(c.Metrics.SocialPosts)
		likes[i] = float64(c.Metrics.SocialLikes)
		reach[i] = float64(c.Metrics.SocialReach)
		messages[i] = float64(c.Metrics.Messages)
		sentiment[i] = c.Metrics.MessageSentiment
		awardsWon[i] = float64(c.Metrics.AwardsWon)
		votes[i] = float64(c.Votes)
		attendance[i] = float64(c.Metrics.OfflineAttendance)
		reports[i] = c.Metrics.ReportScore
	}

	nPosts := Normalize(posts)
	nLikes := Normalize(likes)
	nReach := Normalize(reach)
	nMessages := Normalize(messages)
	nSentiment := Normalize(sentiment)
	nAwards := Normalize(awardsWon)
	nVotes := Normalize(votes)
	nAttendance := Normalize(attendance)
	nReports := Normalize(reports)

	entries := make([]RankingEntry, n)
	for i, c := range candidates {
		social := (nPosts[i] + nLikes[i] + nReach[i]) / 3.0
		messaging := nMessages[i]*0.7 + nSentiment[i]*0.3
		awardsComponent := nAwards[i]
		feedbackComponent := nVotes[i]
		attendanceComponent := nAttendance[i]
		reportsComponent := nReports[i]

		score := weights.Social*social +
			weights.Messaging*messaging +
			weights.Awards*awardsComponent +
			weights.Feedback*feedbackComponent +
			weights.Attendance*attendanceComponent +
			weights.Reports*reportsComponent

		// Rounding happens after all arithmetic so displayed components
		// and the stored score stay consistent
		entries[i] = RankingEntry{
			Club:  c.Club,
			Score: round4(score),
			Components: Components{
				Social:     round4(social),
				Messaging:  round4(messaging),
				Awards:     round4(awardsComponent),
				Feedback:   round4(feedbackComponent),
				Attendance: round4(attendanceComponent),
				Reports:    round4(reportsComponent),
			},
			Raw: RawMetrics{
				Posts:       c.Metrics.SocialPosts,
				Likes:       c.Metrics.SocialLikes,
				Reach:       c.Metrics.SocialReach,
				Messages:    c.Metrics.Messages,
				Sentiment:   c.Metrics.MessageSentiment,
				AwardsWon:   c.Metrics.AwardsWon,
				Votes:       c.Votes,
				Attendance:  c.Metrics.OfflineAttendance,
				ReportScore: c.Metrics.ReportScore,
			},
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	// Ranks are dense and sequential; tied scores still get distinct ranks
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
