package ports

import (
	"context"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/google/uuid"
)

type VotingService interface {
	// CastVote records a single vote for the user. Preconditions in
	// order: the user must exist (domain.ErrNotAuthenticated), must not
	// have voted (domain.ErrAlreadyVoted) and the candidate must exist
	// (domain.ErrCandidateNotFound).
	CastVote(ctx context.Context, userID, candidateID uuid.UUID) (*domain.Vote, error)
}
