package db

import "time"

// Vote records one stakeholder vote for a club in an award. VoterToken is
// an optional deduplication token; when present, the storage layer
// enforces at most one vote per (award, token).
type Vote struct {
	ID         string
	AwardID    int64
	ClubID     int64
	VoterToken string
	CreatedAt  time.Time
}

// Nomination links a club to an award it competes in
type Nomination struct {
	ID          string
	ClubID      int64
	AwardID     int64
	Reason      string
	SubmittedBy string
	SubmittedAt time.Time
	Approved    bool
}

// Decision is the admin's final winner selection for an award. At most one
// exists per award; re-deciding overwrites it in place.
type Decision struct {
	ID        string
	AwardID   int64
	ClubID    int64
	Reason    string
	DecidedBy string
	DecidedAt time.Time
}
