package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateEntry is a time-bounded hourly rate for a promoter and period,
// from the valores_promotor_periodo table. A nil DataFim keeps the entry
// open-ended.
type RateEntry struct {
	ID         int64
	PromotorID int64
	PeriodoID  int64
	ValorHora  decimal.Decimal
	DataInicio time.Time
	DataFim    *time.Time
}
