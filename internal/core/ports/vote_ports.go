package ports

import (
	"context"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/google/uuid"
)

type VoteRepository interface {
	// CastVote applies the cast-vote transition as one transaction:
	// insert the vote row, increment the candidate's votes_count and set
	// the user's has_voted flag. It returns domain.ErrAlreadyVoted when
	// the user row already carries has_voted (checked under a row lock)
	// and domain.ErrCandidateNotFound when the candidate id matches no
	// row. On any failure nothing is written.
	CastVote(ctx context.Context, userID, candidateID uuid.UUID) (*domain.Vote, error)
	FindVotesByUser(ctx context.Context, userID uuid.UUID) ([]domain.Vote, error)
	FindVotesByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Vote, error)
	// CountByCandidate recomputes per-candidate totals from the ledger.
	CountByCandidate(ctx context.Context) (map[uuid.UUID]int64, error)
}
