package services

import (
	"context"
	"fmt"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
)

type resultsService struct {
	candidateRepo ports.CandidateRepository
}

func NewResultsService(candidateRepo ports.CandidateRepository) ports.ResultsService {
	return &resultsService{
		candidateRepo: candidateRepo,
	}
}

func (s *resultsService) ListResults(ctx context.Context) (*domain.Results, error) {
	candidates, err := s.candidateRepo.ListByVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	total, err := s.candidateRepo.TotalVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum votes: %w", err)
	}

	return &domain.Results{
		Candidates: candidates,
		TotalVotes: total,
	}, nil
}

func (s *resultsService) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	return s.candidateRepo.GetAll(ctx)
}
