package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
)

var ledgerSweptTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "refresh_token_ledger_swept_total",
	Help: "Total number of expired refresh token records removed.",
})

// LedgerSweeper periodically purges expired refresh token records. Reads
// already ignore expired records, so the sweep only reclaims space.
type LedgerSweeper struct {
	store    model.RefreshTokenStore
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

// DefaultSweepInterval replaces a non-positive interval.
const DefaultSweepInterval = 10 * time.Minute

func NewLedgerSweeper(store model.RefreshTokenStore, interval time.Duration, logger *logger.Logger) *LedgerSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &LedgerSweeper{store: store, interval: interval, logger: logger, now: time.Now}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *LedgerSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Sweep(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sweep removes records that expired before now and returns how many.
func (s *LedgerSweeper) Sweep(ctx context.Context) int64 {
	n, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("Ledger sweeper: failed to delete expired tokens",
				"error", err.Error())
		}
		return 0
	}
	if n > 0 {
		ledgerSweptTotal.Add(float64(n))
		s.logger.Info("Ledger sweeper: expired tokens removed",
			"count", n)
	}
	return n
}
