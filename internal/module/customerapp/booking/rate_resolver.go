package booking

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

// ResolvedRate is the outcome of a rate lookup. Degraded marks a fallback
// price; it is a warning for the caller, never a failure.
type ResolvedRate struct {
	ValorHora decimal.Decimal
	Degraded  bool
}

// Resolver resolves the hourly rate for a promoter and period as of a
// point in time.
type Resolver interface {
	Resolve(ctx context.Context, promotorID, periodoID int64, asOf time.Time, tx *sql.Tx) (ResolvedRate, error)
}

type memoKey struct {
	promotorID int64
	periodoID  int64
	asOf       int64
}

// RateResolver is the single place where the fallback-rate policy lives.
// A missing or unreadable rate entry prices at the configured fallback and
// flags the result as degraded so checkout is never blocked by pricing
// data gaps.
//
// Instances are request-scoped: the memo deduplicates repeated lookups for
// the same (promoter, period, asOf) within one pricing or registration
// call, and is guarded because pricing fans lookups out concurrently.
type RateResolver struct {
	logger     *logrus.Logger
	repository RateRepository
	fallback   decimal.Decimal

	mu   sync.Mutex
	memo map[memoKey]ResolvedRate
}

func NewRateResolver(logger *logrus.Logger, repository RateRepository, fallback decimal.Decimal) *RateResolver {
	return &RateResolver{
		logger:     logger,
		repository: repository,
		fallback:   fallback,
		memo:       make(map[memoKey]ResolvedRate),
	}
}

// Resolve implements Resolver.
func (r *RateResolver) Resolve(ctx context.Context, promotorID, periodoID int64, asOf time.Time, tx *sql.Tx) (ResolvedRate, error) {
	if err := ctx.Err(); err != nil {
		return ResolvedRate{}, errors.New(499, status.INTERNAL_SERVER_ERROR, "rate resolution was cancelled")
	}

	key := memoKey{promotorID: promotorID, periodoID: periodoID, asOf: asOf.Unix()}

	r.mu.Lock()
	if cached, ok := r.memo[key]; ok {
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	resolved := ResolvedRate{}

	entry, err := r.repository.FindApplicable(ctx, promotorID, periodoID, asOf, tx)
	if err != nil {
		r.logger.WithContext(ctx).WithFields(logrus.Fields{
			"status":      status.RATE_RESOLUTION_DEGRADED,
			"promotor_id": promotorID,
			"periodo_id":  periodoID,
		}).WithError(err).Warn("pricing with fallback hourly rate")

		resolved.ValorHora = r.fallback
		resolved.Degraded = true
	} else {
		resolved.ValorHora = entry.ValorHora
	}

	r.mu.Lock()
	r.memo[key] = resolved
	r.mu.Unlock()

	return resolved, nil
}
