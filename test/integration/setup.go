package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/ballotcast/ballot/internal/adapters/handler/http"
	repo "github.com/ballotcast/ballot/internal/adapters/repository/postgres"
	"github.com/ballotcast/ballot/internal/core/ports"
	"github.com/ballotcast/ballot/internal/core/services"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	VotingSvc   ports.VotingService
	TallySvc    ports.TallyAuditService
	VoteRepo    ports.VoteRepository
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	require.NoError(t, applyMigrations(db))

	userRepo := repo.NewUserRepository(db)
	candidateRepo := repo.NewCandidateRepository(db)
	voteRepo := repo.NewVoteRepository(db)

	identitySvc := services.NewIdentityService(userRepo)
	votingSvc := services.NewVotingService(userRepo, candidateRepo, voteRepo)
	resultsSvc := services.NewResultsService(candidateRepo)
	adminSvc := services.NewAdminService(userRepo, candidateRepo)
	tallySvc := services.NewTallyAuditService(candidateRepo, voteRepo)

	sessions := handler.NewSessionManager("test-secret")
	identityHandler := handler.NewIdentityHandler(identitySvc, sessions)
	pageHandler := handler.NewPageHandler(identitySvc, resultsSvc, sessions)
	voteHandler := handler.NewVoteHandler(votingSvc, sessions)
	resultsHandler := handler.NewResultsHandler(resultsSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)

	router := handler.NewHandler(sessions, identityHandler, pageHandler, voteHandler, resultsHandler, adminHandler)
	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      newBrowser(t),
		VotingSvc:   votingSvc,
		TallySvc:    tallySvc,
		VoteRepo:    voteRepo,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// newBrowser returns a client with its own cookie jar that never follows
// redirects, so tests can assert on Location headers directly.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, client *http.Client, rawURL string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(rawURL, form)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func get(t *testing.T, client *http.Client, rawURL string) *http.Response {
	t.Helper()
	resp, err := client.Get(rawURL)
	require.NoError(t, err)
	return resp
}

func (app *TestApp) register(t *testing.T, client *http.Client, username, password string) *http.Response {
	t.Helper()
	return postForm(t, client, app.Server.URL+"/register", url.Values{
		"username": {username},
		"password": {password},
	})
}

func (app *TestApp) login(t *testing.T, client *http.Client, username, password string) *http.Response {
	t.Helper()
	return postForm(t, client, app.Server.URL+"/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

func (app *TestApp) makeAdmin(t *testing.T, username string) {
	t.Helper()
	res, err := app.DB.Exec("UPDATE users SET is_admin = TRUE WHERE username = $1", username)
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
}

func (app *TestApp) createCandidate(t *testing.T, name string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := app.DB.QueryRow(
		"INSERT INTO candidates (name) VALUES ($1) RETURNING id", name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func (app *TestApp) createUser(t *testing.T, username string) uuid.UUID {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	var id uuid.UUID
	err = app.DB.QueryRow(
		"INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id",
		username, string(hash),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// checkInvariants asserts the two derived-cache invariants: has_voted is
// true iff exactly one vote row exists for the user, and votes_count
// equals the ledger count for every candidate.
func (app *TestApp) checkInvariants(t *testing.T) {
	t.Helper()

	rows, err := app.DB.Query(`
		SELECT u.username, u.has_voted, COUNT(v.id)
		FROM users u
		LEFT JOIN votes v ON v.user_id = u.id
		GROUP BY u.id
	`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var username string
		var hasVoted bool
		var votes int
		require.NoError(t, rows.Scan(&username, &hasVoted, &votes))
		if hasVoted {
			assert.Equal(t, 1, votes, "user %s: has_voted set but %d vote rows", username, votes)
		} else {
			assert.Equal(t, 0, votes, "user %s: has_voted clear but %d vote rows", username, votes)
		}
	}
	require.NoError(t, rows.Err())

	crows, err := app.DB.Query(`
		SELECT c.name, c.votes_count, COUNT(v.id)
		FROM candidates c
		LEFT JOIN votes v ON v.candidate_id = c.id
		GROUP BY c.id
	`)
	require.NoError(t, err)
	defer crows.Close()
	for crows.Next() {
		var name string
		var counter, ledger int64
		require.NoError(t, crows.Scan(&name, &counter, &ledger))
		assert.Equal(t, ledger, counter, "candidate %s: votes_count drifted from ledger", name)
	}
	require.NoError(t, crows.Err())
}
