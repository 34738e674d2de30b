package integration

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsOrderingAndTotal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	leaderID := app.createCandidate(t, "Bob Smith")
	runnerUpID := app.createCandidate(t, "Alice Johnson")
	app.createCandidate(t, "Carol Davis")

	for i := 0; i < 2; i++ {
		userID := app.createUser(t, fmt.Sprintf("leader-voter-%d", i))
		_, err := app.VotingSvc.CastVote(context.Background(), userID, leaderID)
		require.NoError(t, err)
	}
	userID := app.createUser(t, "runner-up-voter")
	_, err := app.VotingSvc.CastVote(context.Background(), userID, runnerUpID)
	require.NoError(t, err)

	resp := get(t, app.Client, app.Server.URL+"/results")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)

	assert.Contains(t, body, "Total votes: 3")

	// Candidates appear in tally order, zero-vote candidates last.
	bob := strings.Index(body, "Bob Smith")
	alice := strings.Index(body, "Alice Johnson")
	carol := strings.Index(body, "Carol Davis")
	require.NotEqual(t, -1, bob)
	require.NotEqual(t, -1, alice)
	require.NotEqual(t, -1, carol)
	assert.Less(t, bob, alice)
	assert.Less(t, alice, carol)

	app.checkInvariants(t)
}

func TestResultsArePublic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	app.createCandidate(t, "Dana Lee")

	resp := get(t, newBrowser(t), app.Server.URL+"/results")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Dana Lee")
	assert.Contains(t, body, "Total votes: 0")
}
