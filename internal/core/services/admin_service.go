package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
)

type adminService struct {
	userRepo      ports.UserRepository
	candidateRepo ports.CandidateRepository
}

func NewAdminService(userRepo ports.UserRepository, candidateRepo ports.CandidateRepository) ports.AdminService {
	return &adminService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*ports.AdminDashboard, error) {
	candidates, err := s.candidateRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return &ports.AdminDashboard{
		Candidates: candidates,
		Users:      users,
	}, nil
}

func (s *adminService) AddCandidate(ctx context.Context, input ports.AddCandidateInput) (*domain.Candidate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrValidation
	}

	candidate := &domain.Candidate{
		Name:        name,
		Party:       strings.TrimSpace(input.Party),
		Description: strings.TrimSpace(input.Description),
		VotesCount:  0,
	}
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	return candidate, nil
}
