package services

import (
	"context"
	"sort"
	"time"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/google/uuid"
)

// In-memory repositories backing the service tests. The vote repo links
// to the user and candidate repos so CastVote can mimic the storage
// transaction: all three writes or none.

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, u := range f.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

type fakeCandidateRepo struct {
	candidates map[uuid.UUID]*domain.Candidate
	order      []uuid.UUID
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[uuid.UUID]*domain.Candidate)}
}

func (f *fakeCandidateRepo) Create(_ context.Context, candidate *domain.Candidate) error {
	candidate.ID = uuid.New()
	candidate.CreatedAt = time.Now().Add(time.Duration(len(f.order)) * time.Millisecond)
	stored := *candidate
	f.candidates[candidate.ID] = &stored
	f.order = append(f.order, candidate.ID)
	return nil
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Candidate, error) {
	c, ok := f.candidates[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCandidateRepo) GetAll(_ context.Context) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for _, id := range f.order {
		candidates = append(candidates, *f.candidates[id])
	}
	return candidates, nil
}

func (f *fakeCandidateRepo) ListByVotes(ctx context.Context) ([]domain.Candidate, error) {
	candidates, _ := f.GetAll(ctx)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].VotesCount != candidates[j].VotesCount {
			return candidates[i].VotesCount > candidates[j].VotesCount
		}
		if !candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
		}
		return candidates[i].ID.String() < candidates[j].ID.String()
	})
	return candidates, nil
}

func (f *fakeCandidateRepo) TotalVotes(_ context.Context) (int64, error) {
	var total int64
	for _, c := range f.candidates {
		total += c.VotesCount
	}
	return total, nil
}

func (f *fakeCandidateRepo) SetVotesCount(_ context.Context, id uuid.UUID, count int64) error {
	c, ok := f.candidates[id]
	if !ok {
		return domain.ErrCandidateNotFound
	}
	c.VotesCount = count
	return nil
}

type fakeVoteRepo struct {
	users      *fakeUserRepo
	candidates *fakeCandidateRepo
	votes      map[uuid.UUID]*domain.Vote // keyed by user id
}

func newFakeVoteRepo(users *fakeUserRepo, candidates *fakeCandidateRepo) *fakeVoteRepo {
	return &fakeVoteRepo{
		users:      users,
		candidates: candidates,
		votes:      make(map[uuid.UUID]*domain.Vote),
	}
}

func (f *fakeVoteRepo) CastVote(_ context.Context, userID, candidateID uuid.UUID) (*domain.Vote, error) {
	user, ok := f.users.users[userID]
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	if user.HasVoted {
		return nil, domain.ErrAlreadyVoted
	}
	if _, ok := f.votes[userID]; ok {
		return nil, domain.ErrAlreadyVoted
	}
	candidate, ok := f.candidates.candidates[candidateID]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}

	vote := &domain.Vote{
		ID:          uuid.New(),
		UserID:      userID,
		CandidateID: candidateID,
		VotedAt:     time.Now(),
	}
	f.votes[userID] = vote
	candidate.VotesCount++
	user.HasVoted = true
	copied := *vote
	return &copied, nil
}

func (f *fakeVoteRepo) FindVotesByUser(_ context.Context, userID uuid.UUID) ([]domain.Vote, error) {
	if v, ok := f.votes[userID]; ok {
		return []domain.Vote{*v}, nil
	}
	return nil, nil
}

func (f *fakeVoteRepo) FindVotesByCandidate(_ context.Context, candidateID uuid.UUID) ([]domain.Vote, error) {
	var votes []domain.Vote
	for _, v := range f.votes {
		if v.CandidateID == candidateID {
			votes = append(votes, *v)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].VotedAt.Before(votes[j].VotedAt) })
	return votes, nil
}

func (f *fakeVoteRepo) CountByCandidate(_ context.Context) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	for _, v := range f.votes {
		counts[v.CandidateID]++
	}
	return counts, nil
}
