package order

import "github.com/aleguimas/promotores/internal/module/customerapp/booking"

type ItemRequest struct {
	PromotorID int64                 `json:"promotor_id" validate:"required"`
	Dias       booking.WeekSelection `json:"dias"`
}

type RegisterOrderRequest struct {
	FormaPagamento string        `json:"forma_pagamento" validate:"required,oneof=pix boleto cartao_credito"`
	Itens          []ItemRequest `json:"itens" validate:"required,min=1,dive"`
}

type QuoteOrderRequest struct {
	PromotorID int64                 `json:"promotor_id" validate:"required"`
	Dias       booking.WeekSelection `json:"dias"`
}
