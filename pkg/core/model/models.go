package model

import "time"

// Club categories used by the seed data and the eligibility rules
const (
	CategoryAcademic   = "Academic"
	CategoryCultural   = "Cultural"
	CategoryTechnical  = "Technical"
	CategorySports     = "Sports"
	CategoryGeneral    = "General"
	CategoryService    = "Service"
	CategoryLeadership = "Leadership"
	CategoryInnovation = "Innovation"
)

// Club represents a student organisation competing for awards
type Club struct {
	ID           int64
	Name         string
	Description  string
	Category     string
	FoundedYear  int
	MemberCount  int
	Achievements string
}

// Award represents a contested award category.
// WinnersDeclared transitions once from false to true when a decision is
// recorded; re-deciding overwrites the decision and refreshes DeclaredAt.
type Award struct {
	ID              int64
	Name            string
	Description     string
	Category        string
	Criteria        string
	WinnersDeclared bool
	DeclaredAt      *time.Time
}

// AggregateMetrics holds the cumulative engagement counters for one club,
// derived entirely from the source snapshots by re-aggregation.
type AggregateMetrics struct {
	ClubID            int64
	SocialPosts       int
	SocialLikes       int
	SocialReach       int
	Messages          int
	MessageSentiment  float64 // mean per-period sentiment, -1..1
	AwardsWon         int
	OfflineAttendance int
	ReportScore       float64 // mean report keyword score, 0..1
}
