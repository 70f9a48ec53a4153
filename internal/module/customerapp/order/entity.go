package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aleguimas/promotores/internal/module/customerapp/booking"
)

// Order is a pedido header plus its line items. ValorTotal is computed
// from the items, never stored on the header.
type Order struct {
	ID             int64
	ClienteID      int64
	FormaPagamento string
	Status         Status
	DataCriacao    time.Time
	Itens          []LineItem
	ValorTotal     decimal.Decimal
}

// LineItem is one booked day for one promoter, from the
// selecoes_promotor table. PromotorNome and PeriodoDescricao are joined
// in on reads for display.
type LineItem struct {
	ID               int64
	PedidoID         int64
	PromotorID       int64
	PromotorNome     string
	DiaSemana        booking.Weekday
	PeriodoID        int64
	PeriodoDescricao string
	Horas            int64
	ValorHora        decimal.Decimal
	ValorTotal       decimal.Decimal
}
