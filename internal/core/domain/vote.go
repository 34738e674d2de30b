package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is the ledger entry linking a user to the candidate they chose.
// Rows are immutable: there is no update or delete path anywhere in the
// application. User.HasVoted and Candidate.VotesCount are caches derived
// from this table.
type Vote struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	VotedAt     time.Time `json:"voted_at"`
}

// TallyDrift reports a candidate whose votes_count counter disagrees with
// the number of vote rows referencing it.
type TallyDrift struct {
	CandidateID uuid.UUID
	Name        string
	Counter     int64
	Ledger      int64
}
