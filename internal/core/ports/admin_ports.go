package ports

import (
	"context"

	"github.com/ballotcast/ballot/internal/core/domain"
)

type AdminDashboard struct {
	Candidates []domain.Candidate
	Users      []domain.User
}

type AddCandidateInput struct {
	Name        string
	Party       string
	Description string
}

type AdminService interface {
	Dashboard(ctx context.Context) (*AdminDashboard, error)
	// AddCandidate creates a candidate with a zero tally. A name that is
	// empty after trimming returns domain.ErrValidation.
	AddCandidate(ctx context.Context, input AddCandidateInput) (*domain.Candidate, error)
}
