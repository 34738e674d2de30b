package domain

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Party       string    `json:"party,omitempty"`
	Description string    `json:"description,omitempty"`
	VotesCount  int64     `json:"votes_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Results is the tally listing: candidates ordered by votes_count
// descending plus the sum of all counters.
type Results struct {
	Candidates []Candidate `json:"candidates"`
	TotalVotes int64       `json:"total_votes"`
}
