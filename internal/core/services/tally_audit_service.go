package services

import (
	"context"
	"fmt"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
)

type tallyAuditService struct {
	candidateRepo ports.CandidateRepository
	voteRepo      ports.VoteRepository
}

func NewTallyAuditService(candidateRepo ports.CandidateRepository, voteRepo ports.VoteRepository) ports.TallyAuditService {
	return &tallyAuditService{
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

func (s *tallyAuditService) Audit(ctx context.Context, repair bool) ([]domain.TallyDrift, error) {
	candidates, err := s.candidateRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	ledger, err := s.voteRepo.CountByCandidate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recount votes: %w", err)
	}

	var drifts []domain.TallyDrift
	for _, c := range candidates {
		counted := ledger[c.ID]
		if counted == c.VotesCount {
			continue
		}

		drifts = append(drifts, domain.TallyDrift{
			CandidateID: c.ID,
			Name:        c.Name,
			Counter:     c.VotesCount,
			Ledger:      counted,
		})

		if repair {
			if err := s.candidateRepo.SetVotesCount(ctx, c.ID, counted); err != nil {
				return drifts, fmt.Errorf("failed to repair tally for candidate %s: %w", c.ID, err)
			}
		}
	}

	return drifts, nil
}
