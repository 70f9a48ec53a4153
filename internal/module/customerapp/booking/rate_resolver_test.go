package booking

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

type fakeRateRepository struct {
	mu      sync.Mutex
	calls   int
	entries map[int64]RateEntry
}

func (f *fakeRateRepository) FindApplicable(ctx context.Context, promotorID, periodoID int64, asOf time.Time, tx *sql.Tx) (RateEntry, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	entry, ok := f.entries[periodoID]
	if !ok {
		return RateEntry{}, errors.New(http.StatusNotFound, status.NOT_FOUND, "no hourly rate found")
	}

	return entry, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestResolveReturnsStoredRate(t *testing.T) {
	repository := &fakeRateRepository{
		entries: map[int64]RateEntry{
			3: {ID: 1, PromotorID: 10, PeriodoID: 3, ValorHora: decimal.NewFromInt(35)},
		},
	}
	resolver := NewRateResolver(testLogger(), repository, decimal.NewFromInt(40))

	rate, err := resolver.Resolve(context.Background(), 10, 3, time.Now(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rate.ValorHora.Equal(decimal.NewFromInt(35)) {
		t.Fatalf("expected rate 35, got %s", rate.ValorHora)
	}
	if rate.Degraded {
		t.Fatal("a stored rate must not be flagged as degraded")
	}
}

func TestResolveFallsBackWhenRateIsMissing(t *testing.T) {
	repository := &fakeRateRepository{entries: map[int64]RateEntry{}}
	resolver := NewRateResolver(testLogger(), repository, decimal.NewFromInt(40))

	rate, err := resolver.Resolve(context.Background(), 10, 3, time.Now(), nil)
	if err != nil {
		t.Fatalf("a missing rate must degrade, not fail: %v", err)
	}

	if !rate.ValorHora.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected fallback rate 40, got %s", rate.ValorHora)
	}
	if !rate.Degraded {
		t.Fatal("a fallback rate must be flagged as degraded")
	}
}

func TestResolveMemoizesRepeatedLookups(t *testing.T) {
	repository := &fakeRateRepository{
		entries: map[int64]RateEntry{
			3: {ID: 1, PromotorID: 10, PeriodoID: 3, ValorHora: decimal.NewFromInt(35)},
		},
	}
	resolver := NewRateResolver(testLogger(), repository, decimal.NewFromInt(40))

	asOf := time.Now()

	first, err := resolver.Resolve(context.Background(), 10, 3, asOf, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := resolver.Resolve(context.Background(), 10, 3, asOf, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.ValorHora.Equal(second.ValorHora) || first.Degraded != second.Degraded {
		t.Fatalf("repeated lookups must agree: %+v vs %+v", first, second)
	}
	if repository.calls != 1 {
		t.Fatalf("expected a single repository call, got %d", repository.calls)
	}
}

func TestResolveMemoizesFallbackOutcome(t *testing.T) {
	repository := &fakeRateRepository{entries: map[int64]RateEntry{}}
	resolver := NewRateResolver(testLogger(), repository, decimal.NewFromInt(40))

	asOf := time.Now()

	for i := 0; i < 3; i++ {
		rate, err := resolver.Resolve(context.Background(), 10, 3, asOf, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rate.Degraded {
			t.Fatal("expected a degraded rate")
		}
	}

	if repository.calls != 1 {
		t.Fatalf("the degraded outcome must be memoized, got %d repository calls", repository.calls)
	}
}

func TestResolveStopsOnCancelledContext(t *testing.T) {
	repository := &fakeRateRepository{entries: map[int64]RateEntry{}}
	resolver := NewRateResolver(testLogger(), repository, decimal.NewFromInt(40))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.Resolve(ctx, 10, 3, time.Now(), nil)
	if err == nil {
		t.Fatal("expected an error on a cancelled context")
	}
	if repository.calls != 0 {
		t.Fatalf("expected no repository calls, got %d", repository.calls)
	}
}
