package order

import (
	"time"

	"github.com/aleguimas/promotores/internal/module/customerapp/booking"
)

type ItemResponse struct {
	PromotorID       int64  `json:"promotor_id"`
	PromotorNome     string `json:"promotor_nome,omitempty"`
	DiaSemana        string `json:"dia_semana"`
	PeriodoID        int64  `json:"periodo_id"`
	PeriodoDescricao string `json:"periodo_descricao,omitempty"`
	Horas            int64  `json:"horas"`
	ValorHora        string `json:"valor_hora"`
	ValorTotal       string `json:"valor_total"`
}

type RegisterOrderResponse struct {
	ID             int64          `json:"id"`
	Status         string         `json:"status"`
	FormaPagamento string         `json:"forma_pagamento"`
	DataCriacao    time.Time      `json:"data_criacao"`
	Itens          []ItemResponse `json:"itens"`
	TotalHoras     int64          `json:"total_horas"`
	ValorTotal     string         `json:"valor_total"`
	RateDegraded   bool           `json:"rate_degraded,omitempty"`
}

func (r *RegisterOrderResponse) PopulateFromEntity(o Order) {
	r.ID = o.ID
	r.Status = string(o.Status)
	r.FormaPagamento = o.FormaPagamento
	r.DataCriacao = o.DataCriacao
	r.ValorTotal = o.ValorTotal.StringFixed(2)

	itensResponse := make([]ItemResponse, len(o.Itens))
	for k, v := range o.Itens {
		itensResponse[k] = ItemResponse{
			PromotorID:       v.PromotorID,
			PromotorNome:     v.PromotorNome,
			DiaSemana:        string(v.DiaSemana),
			PeriodoID:        v.PeriodoID,
			PeriodoDescricao: v.PeriodoDescricao,
			Horas:            v.Horas,
			ValorHora:        v.ValorHora.StringFixed(2),
			ValorTotal:       v.ValorTotal.StringFixed(2),
		}
		r.TotalHoras += v.Horas
	}
	r.Itens = itensResponse
}

type QuoteLineResponse struct {
	DiaSemana string `json:"dia_semana"`
	PeriodoID int64  `json:"periodo_id"`
	Horas     int64  `json:"horas"`
	ValorHora string `json:"valor_hora"`
	ValorDia  string `json:"valor_dia"`
	Degradado bool   `json:"degradado,omitempty"`
}

type QuoteOrderResponse struct {
	PromotorID   int64               `json:"promotor_id"`
	Linhas       []QuoteLineResponse `json:"linhas"`
	TotalHoras   int64               `json:"total_horas"`
	ValorTotal   string              `json:"valor_total"`
	RateDegraded bool                `json:"rate_degraded,omitempty"`
}

func (r *QuoteOrderResponse) PopulateFromQuote(promotorID int64, q booking.Quote) {
	r.PromotorID = promotorID
	r.TotalHoras = q.TotalHoras
	r.ValorTotal = q.TotalValor.StringFixed(2)
	r.RateDegraded = q.Degraded

	linhas := make([]QuoteLineResponse, len(q.Lines))
	for k, line := range q.Lines {
		linhas[k] = QuoteLineResponse{
			DiaSemana: string(line.Day),
			PeriodoID: line.PeriodID,
			Horas:     line.Hours,
			ValorHora: line.ValorHora.StringFixed(2),
			ValorDia:  line.ValorDia.StringFixed(2),
			Degradado: line.Degraded,
		}
	}
	r.Linhas = linhas
}

type OrderDetailResponse struct {
	ID             int64          `json:"id"`
	DataCriacao    time.Time      `json:"data_criacao"`
	Status         string         `json:"status"`
	FormaPagamento string         `json:"forma_pagamento"`
	ValorTotal     string         `json:"valor_total"`
	Itens          []ItemResponse `json:"itens"`
}

type GetOrderHistoryResponse []OrderDetailResponse
