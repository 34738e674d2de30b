package ports

import (
	"context"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/google/uuid"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *domain.Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	GetAll(ctx context.Context) ([]domain.Candidate, error)
	// ListByVotes returns every candidate ordered by votes_count
	// descending, ties broken by created_at then id ascending.
	ListByVotes(ctx context.Context) ([]domain.Candidate, error)
	TotalVotes(ctx context.Context) (int64, error)
	SetVotesCount(ctx context.Context, id uuid.UUID, count int64) error
}
