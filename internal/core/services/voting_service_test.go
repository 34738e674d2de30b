package services

import (
	"context"
	"testing"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type votingFixture struct {
	users      *fakeUserRepo
	candidates *fakeCandidateRepo
	votes      *fakeVoteRepo
	service    ports.VotingService
}

func newVotingFixture() *votingFixture {
	users := newFakeUserRepo()
	candidates := newFakeCandidateRepo()
	votes := newFakeVoteRepo(users, candidates)
	return &votingFixture{
		users:      users,
		candidates: candidates,
		votes:      votes,
		service:    NewVotingService(users, candidates, votes),
	}
}

func (f *votingFixture) addUser(t *testing.T, username string) uuid.UUID {
	t.Helper()
	u := &domain.User{Username: username, PasswordHash: "x"}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u.ID
}

func (f *votingFixture) addCandidate(t *testing.T, name string) uuid.UUID {
	t.Helper()
	c := &domain.Candidate{Name: name}
	require.NoError(t, f.candidates.Create(context.Background(), c))
	return c.ID
}

func TestCastVote(t *testing.T) {
	ctx := context.Background()
	f := newVotingFixture()
	userID := f.addUser(t, "alice")
	candidateID := f.addCandidate(t, "Dana Lee")

	vote, err := f.service.CastVote(ctx, userID, candidateID)
	require.NoError(t, err)
	require.NotNil(t, vote)
	assert.Equal(t, userID, vote.UserID)
	assert.Equal(t, candidateID, vote.CandidateID)

	user, err := f.users.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.True(t, user.HasVoted)

	candidate, err := f.candidates.GetByID(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), candidate.VotesCount)

	votes, err := f.votes.FindVotesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}

func TestCastVoteTwice(t *testing.T) {
	ctx := context.Background()
	f := newVotingFixture()
	userID := f.addUser(t, "alice")
	candidateID := f.addCandidate(t, "Dana Lee")

	_, err := f.service.CastVote(ctx, userID, candidateID)
	require.NoError(t, err)

	_, err = f.service.CastVote(ctx, userID, candidateID)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)

	votes, err := f.votes.FindVotesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, votes, 1, "retry must not create a second vote")

	candidate, err := f.candidates.GetByID(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), candidate.VotesCount)
}

func TestCastVoteUnknownCandidate(t *testing.T) {
	ctx := context.Background()
	f := newVotingFixture()
	userID := f.addUser(t, "alice")

	_, err := f.service.CastVote(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)

	user, err := f.users.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.False(t, user.HasVoted, "failed cast must not mark the user as voted")
}

func TestCastVoteUnknownUser(t *testing.T) {
	f := newVotingFixture()
	candidateID := f.addCandidate(t, "Dana Lee")

	_, err := f.service.CastVote(context.Background(), uuid.New(), candidateID)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

// A user who already voted gets ErrAlreadyVoted even when the candidate
// id is unknown: the has_voted check comes first.
func TestCastVotePreconditionOrder(t *testing.T) {
	ctx := context.Background()
	f := newVotingFixture()
	userID := f.addUser(t, "alice")
	candidateID := f.addCandidate(t, "Dana Lee")

	_, err := f.service.CastVote(ctx, userID, candidateID)
	require.NoError(t, err)

	_, err = f.service.CastVote(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}
