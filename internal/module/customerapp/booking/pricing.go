package booking

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// QuoteLine is the priced outcome of one validated day selection.
type QuoteLine struct {
	Day       Weekday
	PeriodID  int64
	Hours     int64
	ValorHora decimal.Decimal
	ValorDia  decimal.Decimal
	Degraded  bool
}

// Quote is a priced week for a single promoter. TotalValor is summed over
// unrounded line totals and rounded once, half-up, to two decimal places.
type Quote struct {
	Lines      []QuoteLine
	TotalHoras int64
	TotalValor decimal.Decimal
	Degraded   bool
}

type PricingEngine struct {
	logger   *logrus.Logger
	resolver Resolver
}

func NewPricingEngine(logger *logrus.Logger, resolver Resolver) *PricingEngine {
	return &PricingEngine{
		logger:   logger,
		resolver: resolver,
	}
}

// Price resolves the hourly rate of every selected day as of asOf and
// computes line and week totals. Rate lookups are independent per day and
// fan out concurrently; results land in an index-addressed slice so the
// canonical weekday order of days survives the join.
func (e *PricingEngine) Price(ctx context.Context, promotorID int64, days []SelectedDay, asOf time.Time) (Quote, error) {
	lines := make([]QuoteLine, len(days))
	errs := make([]error, len(days))

	var wg sync.WaitGroup
	for i, day := range days {
		wg.Add(1)
		go func(i int, day SelectedDay) {
			defer wg.Done()

			rate, err := e.resolver.Resolve(ctx, promotorID, day.PeriodID, asOf, nil)
			if err != nil {
				errs[i] = err
				return
			}

			hours := decimal.NewFromInt(day.Hours)
			lines[i] = QuoteLine{
				Day:       day.Day,
				PeriodID:  day.PeriodID,
				Hours:     day.Hours,
				ValorHora: rate.ValorHora,
				ValorDia:  rate.ValorHora.Mul(hours),
				Degraded:  rate.Degraded,
			}
		}(i, day)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Quote{}, err
		}
	}

	quote := Quote{
		Lines:      lines,
		TotalValor: decimal.Zero,
	}

	for _, line := range lines {
		quote.TotalHoras += line.Hours
		quote.TotalValor = quote.TotalValor.Add(line.ValorDia)
		quote.Degraded = quote.Degraded || line.Degraded
	}

	quote.TotalValor = quote.TotalValor.Round(2)

	return quote, nil
}
