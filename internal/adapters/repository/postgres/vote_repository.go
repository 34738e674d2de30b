package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{db: db}
}

// CastVote performs the three writes of the cast-vote transition in one
// transaction. The user row is locked first, so concurrent casts for the
// same user serialize on it and the loser sees has_voted already set. The
// counter increment runs inside the same transaction, so concurrent casts
// for the same candidate cannot lose updates. UNIQUE (user_id) on votes
// backstops the whole thing at the storage layer.
func (r *voteRepository) CastVote(ctx context.Context, userID, candidateID uuid.UUID) (*domain.Vote, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var hasVoted bool
	err = tx.QueryRowContext(ctx, `SELECT has_voted FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&hasVoted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to lock user row: %w", err)
	}
	if hasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	vote := &domain.Vote{UserID: userID, CandidateID: candidateID}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO votes (user_id, candidate_id) VALUES ($1, $2) RETURNING id, voted_at`,
		userID, candidateID,
	).Scan(&vote.ID, &vote.VotedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation on votes(user_id)
				return nil, domain.ErrAlreadyVoted
			case "23503": // foreign_key_violation on candidate_id
				return nil, domain.ErrCandidateNotFound
			}
		}
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	res, err := tx.ExecContext(ctx, `UPDATE candidates SET votes_count = votes_count + 1 WHERE id = $1`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to increment votes_count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrCandidateNotFound
	}

	if _, err := tx.ExecContext(ctx, `UPDATE users SET has_voted = TRUE WHERE id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to set has_voted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}

	return vote, nil
}

func (r *voteRepository) FindVotesByUser(ctx context.Context, userID uuid.UUID) ([]domain.Vote, error) {
	query := `
		SELECT id, user_id, candidate_id, voted_at
		FROM votes
		WHERE user_id = $1
		ORDER BY voted_at ASC, id ASC
	`
	return r.queryVotes(ctx, query, userID)
}

func (r *voteRepository) FindVotesByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Vote, error) {
	query := `
		SELECT id, user_id, candidate_id, voted_at
		FROM votes
		WHERE candidate_id = $1
		ORDER BY voted_at ASC, id ASC
	`
	return r.queryVotes(ctx, query, candidateID)
}

func (r *voteRepository) CountByCandidate(ctx context.Context) (map[uuid.UUID]int64, error) {
	query := `SELECT candidate_id, COUNT(*) FROM votes GROUP BY candidate_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var id uuid.UUID
		var n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote counts: %w", err)
	}
	return counts, nil
}

func (r *voteRepository) queryVotes(ctx context.Context, query string, arg any) ([]domain.Vote, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.UserID, &v.CandidateID, &v.VotedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}
