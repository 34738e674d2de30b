package services

import (
	"context"
	"fmt"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
	"github.com/google/uuid"
)

type votingService struct {
	userRepo      ports.UserRepository
	candidateRepo ports.CandidateRepository
	voteRepo      ports.VoteRepository
}

func NewVotingService(userRepo ports.UserRepository, candidateRepo ports.CandidateRepository, voteRepo ports.VoteRepository) ports.VotingService {
	return &votingService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

func (s *votingService) CastVote(ctx context.Context, userID, candidateID uuid.UUID) (*domain.Vote, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		// Session references a user row that no longer exists.
		return nil, domain.ErrNotAuthenticated
	}
	if user.HasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil {
		return nil, domain.ErrCandidateNotFound
	}

	// The repository re-checks has_voted under a row lock, so two
	// concurrent casts for the same user serialize and only one commits.
	return s.voteRepo.CastVote(ctx, userID, candidateID)
}
