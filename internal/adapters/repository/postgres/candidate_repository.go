package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
	"github.com/google/uuid"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) ports.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (name, party, description, votes_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, candidate.Name, candidate.Party, candidate.Description, candidate.VotesCount).
		Scan(&candidate.ID, &candidate.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	query := `
		SELECT id, name, party, description, votes_count, created_at
		FROM candidates
		WHERE id = $1
	`
	candidate := &domain.Candidate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&candidate.ID, &candidate.Name, &candidate.Party, &candidate.Description,
		&candidate.VotesCount, &candidate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

func (r *candidateRepository) GetAll(ctx context.Context) ([]domain.Candidate, error) {
	query := `
		SELECT id, name, party, description, votes_count, created_at
		FROM candidates
		ORDER BY created_at ASC, id ASC
	`
	return r.queryCandidates(ctx, query)
}

func (r *candidateRepository) ListByVotes(ctx context.Context) ([]domain.Candidate, error) {
	query := `
		SELECT id, name, party, description, votes_count, created_at
		FROM candidates
		ORDER BY votes_count DESC, created_at ASC, id ASC
	`
	return r.queryCandidates(ctx, query)
}

func (r *candidateRepository) TotalVotes(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(votes_count), 0) FROM candidates`
	var total int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum votes_count: %w", err)
	}
	return total, nil
}

func (r *candidateRepository) SetVotesCount(ctx context.Context, id uuid.UUID, count int64) error {
	query := `UPDATE candidates SET votes_count = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, count)
	if err != nil {
		return fmt.Errorf("failed to set votes_count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

func (r *candidateRepository) queryCandidates(ctx context.Context, query string) ([]domain.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Party, &c.Description, &c.VotesCount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}
