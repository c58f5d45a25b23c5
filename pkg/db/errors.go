package db

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateVote indicates a vote with the same token already exists
	// for the award
	ErrDuplicateVote = errors.New("duplicate vote for this award")

	// ErrDuplicateNomination indicates the club is already nominated for
	// the award
	ErrDuplicateNomination = errors.New("club already nominated for this award")
)
