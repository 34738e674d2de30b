package ports

import (
	"context"

	"github.com/ballotcast/ballot/internal/core/domain"
)

type TallyAuditService interface {
	// Audit compares every candidate's votes_count counter against the
	// vote ledger and returns the candidates that drifted. With repair
	// set, counters are rewritten from the ledger.
	Audit(ctx context.Context, repair bool) ([]domain.TallyDrift, error)
}
