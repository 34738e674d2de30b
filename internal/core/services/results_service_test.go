package services

import (
	"context"
	"testing"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResultsOrdering(t *testing.T) {
	ctx := context.Background()
	candidates := newFakeCandidateRepo()
	svc := NewResultsService(candidates)

	for _, c := range []domain.Candidate{
		{Name: "Alice Johnson", VotesCount: 2},
		{Name: "Bob Smith", VotesCount: 5},
		{Name: "Carol Davis", VotesCount: 2},
		{Name: "Dana Lee", VotesCount: 0},
	} {
		candidate := c
		require.NoError(t, candidates.Create(ctx, &candidate))
	}

	results, err := svc.ListResults(ctx)
	require.NoError(t, err)

	var names []string
	for _, c := range results.Candidates {
		names = append(names, c.Name)
	}
	// Highest tally first; equal tallies keep creation order.
	assert.Equal(t, []string{"Bob Smith", "Alice Johnson", "Carol Davis", "Dana Lee"}, names)
	assert.Equal(t, int64(9), results.TotalVotes)
}

func TestListResultsEmpty(t *testing.T) {
	svc := NewResultsService(newFakeCandidateRepo())

	results, err := svc.ListResults(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results.Candidates)
	assert.Equal(t, int64(0), results.TotalVotes)
}
