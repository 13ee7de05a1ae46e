package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/repository"
)

// ReconcilerService sweeps loan rows whose book was deleted out-of-band.
// The foreign keys are the primary defense; this is the safety net for
// environments where they were bypassed.
type ReconcilerService struct {
	log    *zap.Logger
	ledger repository.LedgerRepository
}

func NewReconcilerService(ledger repository.LedgerRepository, log *zap.Logger) *ReconcilerService {
	return &ReconcilerService{
		log:    log,
		ledger: ledger,
	}
}

// RemoveOrphanedLoans is idempotent: a second run right after the first
// removes nothing.
func (s *ReconcilerService) RemoveOrphanedLoans(ctx context.Context) (int, error) {
	removed, err := s.ledger.RemoveOrphanedLoans(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.log.Warn("removed orphaned loans", zap.Int("count", removed))
	}
	return removed, nil
}

// Run sweeps on a timer until ctx is done.
func (s *ReconcilerService) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.RemoveOrphanedLoans(ctx); err != nil {
				s.log.Error("scheduled sweep", zap.Error(err))
			}
		}
	}
}
