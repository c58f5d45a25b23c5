// Package metrics merges the periodic engagement snapshots into one
// aggregate record per club.
package metrics

import "github.com/campuslife/club-awards/pkg/core/model"

// SocialRow is one club-period row from the social media snapshot
type SocialRow struct {
	ClubID int64
	Posts  int
	Likes  int
	Reach  int
}

// MessagingRow is one club-period row from the messaging snapshot
type MessagingRow struct {
	ClubID    int64
	Messages  int
	Sentiment float64
}

// AttendanceRow is one offline event with its attendee count
type AttendanceRow struct {
	ClubID    int64
	Attendees int
}

// AwardWinRow records a single prior award win; each row counts as one win
type AwardWinRow struct {
	ClubID int64
	Name   string
	Level  string
}

// SourceSet bundles all the raw inputs for one aggregation run. Reports
// maps club ID to the free-text report documents found for that club.
type SourceSet struct {
	Social     []SocialRow
	Messaging  []MessagingRow
	Attendance []AttendanceRow
	AwardWins  []AwardWinRow
	Reports    map[int64][]string
}

// Aggregate merges the source rows into one AggregateMetrics per club that
// appears in any source. Counters are additive sums, messaging sentiment
// is the arithmetic mean of per-period values, and the report score is the
// mean keyword score over the club's report documents (0 if none).
func Aggregate(src SourceSet) map[int64]model.AggregateMetrics {
	type accumulator struct {
		metrics      model.AggregateMetrics
		sentimentSum float64
		sentimentCnt int
		reportSum    float64
		reportCnt    int
	}

	accs := make(map[int64]*accumulator)
	get := func(clubID int64) *accumulator {
		acc, ok := accs[clubID]
		if !ok {
			acc = &accumulator{metrics: model.AggregateMetrics{ClubID: clubID}}
			accs[clubID] = acc
		}
		return acc
	}

	for _, row := range src.Social {
		acc := get(row.ClubID)
		acc.metrics.SocialPosts += row.Posts
		acc.metrics.SocialLikes += row.Likes
		acc.metrics.SocialReach += row.Reach
	}

	for _, row := range src.Messaging {
		acc := get(row.ClubID)
		acc.metrics.Messages += row.Messages
		acc.sentimentSum += row.Sentiment
		acc.sentimentCnt++
	}

	for _, row := range src.Attendance {
		get(row.ClubID).metrics.OfflineAttendance += row.Attendees
	}

	for _, row := range src.AwardWins {
		get(row.ClubID).metrics.AwardsWon++
	}

	for clubID, documents := range src.Reports {
		acc := get(clubID)
		for _, text := range documents {
			acc.reportSum += ScoreReport(text)
			acc.reportCnt++
		}
	}

	result := make(map[int64]model.AggregateMetrics, len(accs))
	for clubID, acc := range accs {
		if acc.sentimentCnt > 0 {
			acc.metrics.MessageSentiment = acc.sentimentSum / float64(acc.sentimentCnt)
		}
		if acc.reportCnt > 0 {
			acc.metrics.ReportScore = acc.reportSum / float64(acc.reportCnt)
		}
		result[clubID] = acc.metrics
	}
	return result
}
