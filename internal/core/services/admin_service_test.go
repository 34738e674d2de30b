package services

import (
	"context"
	"testing"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCandidate(t *testing.T) {
	ctx := context.Background()
	candidates := newFakeCandidateRepo()
	svc := NewAdminService(newFakeUserRepo(), candidates)

	candidate, err := svc.AddCandidate(ctx, ports.AddCandidateInput{
		Name:  "  Dana Lee  ",
		Party: " Independent ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana Lee", candidate.Name)
	assert.Equal(t, "Independent", candidate.Party)
	assert.Empty(t, candidate.Description)
	assert.Equal(t, int64(0), candidate.VotesCount)
}

func TestAddCandidateEmptyName(t *testing.T) {
	ctx := context.Background()
	candidates := newFakeCandidateRepo()
	svc := NewAdminService(newFakeUserRepo(), candidates)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.AddCandidate(ctx, ports.AddCandidateInput{Name: name})
		assert.ErrorIs(t, err, domain.ErrValidation)
	}

	all, err := candidates.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	candidates := newFakeCandidateRepo()
	svc := NewAdminService(users, candidates)

	require.NoError(t, users.Create(ctx, &domain.User{Username: "alice"}))
	require.NoError(t, users.Create(ctx, &domain.User{Username: "bob"}))
	require.NoError(t, candidates.Create(ctx, &domain.Candidate{Name: "Dana Lee"}))

	dashboard, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, dashboard.Users, 2)
	assert.Len(t, dashboard.Candidates, 1)
}
