package ports

import (
	"context"

	"github.com/ballotcast/ballot/internal/core/domain"
)

type ResultsService interface {
	ListResults(ctx context.Context) (*domain.Results, error)
	// ListCandidates returns candidates in creation order, for the index
	// and dashboard pages.
	ListCandidates(ctx context.Context) ([]domain.Candidate, error)
}
