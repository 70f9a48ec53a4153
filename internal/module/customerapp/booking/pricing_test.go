package booking

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeResolver struct {
	mu    sync.Mutex
	calls int
	rates map[int64]ResolvedRate
}

func (f *fakeResolver) Resolve(ctx context.Context, promotorID, periodoID int64, asOf time.Time, tx *sql.Tx) (ResolvedRate, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	rate, ok := f.rates[periodoID]
	if !ok {
		return ResolvedRate{ValorHora: decimal.NewFromInt(40), Degraded: true}, nil
	}

	return rate, nil
}

func TestPriceComputesLineAndWeekTotals(t *testing.T) {
	resolver := &fakeResolver{
		rates: map[int64]ResolvedRate{
			3: {ValorHora: decimal.NewFromInt(35)},
			4: {ValorHora: decimal.NewFromInt(48)},
		},
	}
	engine := NewPricingEngine(testLogger(), resolver)

	days := []SelectedDay{
		{Day: Segunda, Hours: 8, PeriodID: 3},
		{Day: Sabado, Hours: 4, PeriodID: 4},
	}

	quote, err := engine.Price(context.Background(), 10, days, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.TotalHoras != 12 {
		t.Fatalf("expected 12 total hours, got %d", quote.TotalHoras)
	}
	if got := quote.TotalValor.StringFixed(2); got != "472.00" {
		t.Fatalf("expected total 472.00, got %s", got)
	}
	if quote.Degraded {
		t.Fatal("no line was degraded, the quote must not be either")
	}

	if len(quote.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(quote.Lines))
	}
	if quote.Lines[0].Day != Segunda || quote.Lines[1].Day != Sabado {
		t.Fatalf("lines must keep the selection order, got %s then %s", quote.Lines[0].Day, quote.Lines[1].Day)
	}
	if got := quote.Lines[0].ValorDia.StringFixed(2); got != "280.00" {
		t.Fatalf("expected segunda line total 280.00, got %s", got)
	}
	if got := quote.Lines[1].ValorDia.StringFixed(2); got != "192.00" {
		t.Fatalf("expected sabado line total 192.00, got %s", got)
	}
}

func TestPricePropagatesDegradedFlag(t *testing.T) {
	resolver := &fakeResolver{
		rates: map[int64]ResolvedRate{
			3: {ValorHora: decimal.NewFromInt(35)},
		},
	}
	engine := NewPricingEngine(testLogger(), resolver)

	days := []SelectedDay{
		{Day: Segunda, Hours: 8, PeriodID: 3},
		{Day: Domingo, Hours: 4, PeriodID: 6},
	}

	quote, err := engine.Price(context.Background(), 10, days, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quote.Degraded {
		t.Fatal("a degraded line must degrade the whole quote")
	}
	if quote.Lines[0].Degraded {
		t.Fatal("the segunda line has a stored rate and must not be degraded")
	}
	if !quote.Lines[1].Degraded {
		t.Fatal("the domingo line priced at the fallback must be degraded")
	}
	if got := quote.TotalValor.StringFixed(2); got != "440.00" {
		t.Fatalf("expected total 440.00, got %s", got)
	}
}

func TestPriceRoundsOnceAfterSummation(t *testing.T) {
	third := decimal.NewFromInt(1).Div(decimal.NewFromInt(3)) // 0.333...
	resolver := &fakeResolver{
		rates: map[int64]ResolvedRate{
			1: {ValorHora: third},
			2: {ValorHora: third},
			3: {ValorHora: third},
		},
	}
	engine := NewPricingEngine(testLogger(), resolver)

	days := []SelectedDay{
		{Day: Segunda, Hours: 1, PeriodID: 1},
		{Day: Terca, Hours: 1, PeriodID: 2},
		{Day: Quarta, Hours: 1, PeriodID: 3},
	}

	quote, err := engine.Price(context.Background(), 10, days, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rounding each line first would give 0.33 * 3 = 0.99; summing the
	// unrounded lines gives 1.00.
	if got := quote.TotalValor.StringFixed(2); got != "1.00" {
		t.Fatalf("expected total 1.00, got %s", got)
	}
}

func TestPriceResolvesEveryDayOnce(t *testing.T) {
	resolver := &fakeResolver{
		rates: map[int64]ResolvedRate{
			1: {ValorHora: decimal.NewFromInt(35)},
			2: {ValorHora: decimal.NewFromInt(35)},
			4: {ValorHora: decimal.NewFromInt(48)},
		},
	}
	engine := NewPricingEngine(testLogger(), resolver)

	days := []SelectedDay{
		{Day: Segunda, Hours: 8, PeriodID: 1},
		{Day: Terca, Hours: 6, PeriodID: 2},
		{Day: Sabado, Hours: 4, PeriodID: 4},
	}

	if _, err := engine.Price(context.Background(), 10, days, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolver.calls != len(days) {
		t.Fatalf("expected %d resolver calls, got %d", len(days), resolver.calls)
	}
}
