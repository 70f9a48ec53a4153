package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/internal/module/customerapp/booking"
	"github.com/aleguimas/promotores/internal/module/customerapp/client"
	"github.com/aleguimas/promotores/internal/module/customerapp/period"
	"github.com/aleguimas/promotores/internal/module/customerapp/promoter"
	"github.com/aleguimas/promotores/internal/pkg/session"
	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/gctasks"
	"github.com/aleguimas/promotores/pkg/pubsub"
	"github.com/aleguimas/promotores/pkg/status"
)

type OrderUseCase interface {
	RegisterOrder(ctx context.Context, req RegisterOrderRequest) (RegisterOrderResponse, error)
	QuoteOrder(ctx context.Context, req QuoteOrderRequest) (QuoteOrderResponse, error)
	GetOrderHistory(ctx context.Context) (GetOrderHistoryResponse, error)
	OnExpireOrder(ctx context.Context, e ExpireOrderEvent) error
}

type orderUseCase struct {
	logger              *logrus.Logger
	timeout             time.Duration
	baseURL             string
	orderExpireDuration time.Duration
	fallbackHourlyRate  decimal.Decimal
	promoterRepository  promoter.PromoterRepository
	periodRepository    period.PeriodRepository
	clientRepository    client.ClientRepository
	rateRepository      booking.RateRepository
	orderRepository     OrderRepository
	lineItemRepository  LineItemRepository
	publisher           pubsub.Publisher
	cloudTask           gctasks.Client
}

type OrderUseCaseProperty struct {
	Logger              *logrus.Logger
	Timeout             time.Duration
	BaseURL             string
	OrderExpireDuration time.Duration
	FallbackHourlyRate  decimal.Decimal
	PromoterRepository  promoter.PromoterRepository
	PeriodRepository    period.PeriodRepository
	ClientRepository    client.ClientRepository
	RateRepository      booking.RateRepository
	OrderRepository     OrderRepository
	LineItemRepository  LineItemRepository
	Publisher           pubsub.Publisher
	CloudTask           gctasks.Client
}

func NewOrderUseCase(props OrderUseCaseProperty) OrderUseCase {
	return &orderUseCase{
		logger:              props.Logger,
		timeout:             props.Timeout,
		baseURL:             props.BaseURL,
		orderExpireDuration: props.OrderExpireDuration,
		fallbackHourlyRate:  props.FallbackHourlyRate,
		promoterRepository:  props.PromoterRepository,
		periodRepository:    props.PeriodRepository,
		clientRepository:    props.ClientRepository,
		rateRepository:      props.RateRepository,
		orderRepository:     props.OrderRepository,
		lineItemRepository:  props.LineItemRepository,
		publisher:           props.Publisher,
		cloudTask:           props.CloudTask,
	}
}

type pricedItem struct {
	promotorID   int64
	promotorNome string
	quote        booking.Quote
}

// validateAndPrice checks one requested item against the promoter's
// declared availability and prices it as of asOf. The same resolver is
// shared across items so repeated (promoter, period) lookups within one
// registration are deduplicated.
func (u *orderUseCase) validateAndPrice(ctx context.Context, engine *booking.PricingEngine, classes map[int64]booking.DayClass, promotorID int64, dias booking.WeekSelection, asOf time.Time) (pricedItem, error) {
	p, err := u.promoterRepository.FindByID(ctx, promotorID, nil)
	if err != nil {
		return pricedItem{}, err
	}

	if !p.Active() {
		return pricedItem{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST,
			fmt.Sprintf("promoter '%s' is not available for booking", p.Nome))
	}

	var availability booking.WeekAvailability
	if p.Disponibilidade != nil {
		availability = p.Disponibilidade.Horas
	}

	days, err := booking.Validate(availability, classes, dias)
	if err != nil {
		return pricedItem{}, err
	}

	quote, err := engine.Price(ctx, promotorID, days, asOf)
	if err != nil {
		return pricedItem{}, err
	}

	return pricedItem{
		promotorID:   promotorID,
		promotorNome: p.Nome,
		quote:        quote,
	}, nil
}

// RegisterOrder implements OrderUseCase. The pedido header and every line
// item are written inside one transaction; any failure rolls the whole
// order back so no partial order is ever visible.
func (u *orderUseCase) RegisterOrder(ctx context.Context, req RegisterOrderRequest) (RegisterOrderResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	acc, err := session.GetAccountFromCtx(ctx)
	if err != nil {
		return RegisterOrderResponse{}, err
	}

	if _, err := u.clientRepository.FindByID(ctx, acc.ID, nil); err != nil {
		return RegisterOrderResponse{}, err
	}

	periods, err := u.periodRepository.FindMany(ctx, nil)
	if err != nil {
		return RegisterOrderResponse{}, err
	}
	classes := period.ClassIndex(periods)

	descricoes := make(map[int64]string, len(periods))
	for _, p := range periods {
		descricoes[p.ID] = p.Descricao
	}

	resolver := booking.NewRateResolver(u.logger, u.rateRepository, u.fallbackHourlyRate)
	engine := booking.NewPricingEngine(u.logger, resolver)

	now := time.Now()

	priced := make([]pricedItem, 0, len(req.Itens))
	for _, item := range req.Itens {
		pi, err := u.validateAndPrice(ctx, engine, classes, item.PromotorID, item.Dias, now)
		if err != nil {
			return RegisterOrderResponse{}, err
		}
		priced = append(priced, pi)
	}

	order := Order{
		ClienteID:      acc.ID,
		FormaPagamento: req.FormaPagamento,
		Status:         StatusPendente,
		DataCriacao:    now,
	}

	tx, err := u.orderRepository.BeginTx(ctx)
	if err != nil {
		return RegisterOrderResponse{}, err
	}

	orderID, err := u.orderRepository.Save(ctx, order, tx)
	if err != nil {
		u.orderRepository.Rollback(ctx, tx)
		return RegisterOrderResponse{}, errors.New(http.StatusInternalServerError, status.REGISTRATION_FAILED, "an error occurred while registering the order")
	}
	order.ID = orderID

	degraded := false
	totalValor := decimal.Zero

	for _, pi := range priced {
		degraded = degraded || pi.quote.Degraded
		totalValor = totalValor.Add(pi.quote.TotalValor)

		for _, line := range pi.quote.Lines {
			item := LineItem{
				PedidoID:         orderID,
				PromotorID:       pi.promotorID,
				PromotorNome:     pi.promotorNome,
				DiaSemana:        line.Day,
				PeriodoID:        line.PeriodID,
				PeriodoDescricao: descricoes[line.PeriodID],
				Horas:            line.Hours,
				ValorHora:        line.ValorHora,
				ValorTotal:       line.ValorDia,
			}

			if err := u.lineItemRepository.Save(ctx, item, tx); err != nil {
				u.orderRepository.Rollback(ctx, tx)
				return RegisterOrderResponse{}, errors.New(http.StatusInternalServerError, status.REGISTRATION_FAILED, "an error occurred while registering the order")
			}

			order.Itens = append(order.Itens, item)
		}
	}
	order.ValorTotal = totalValor.Round(2)

	if err := u.orderRepository.CommitTx(ctx, tx); err != nil {
		u.orderRepository.Rollback(ctx, tx)
		return RegisterOrderResponse{}, errors.New(http.StatusInternalServerError, status.REGISTRATION_FAILED, "an error occurred while registering the order")
	}

	if degraded {
		u.logger.WithContext(ctx).WithFields(logrus.Fields{
			"status":   status.RATE_RESOLUTION_DEGRADED,
			"order_id": orderID,
		}).Warn("order was priced with a fallback hourly rate")
	}

	orderBuff, _ := json.Marshal(order)
	u.publisher.Publish(ctx, "order-registered", strconv.FormatInt(orderID, 10), nil, orderBuff)

	if u.cloudTask != nil {
		eventBuff, _ := json.Marshal(ExpireOrderEvent{ID: orderID})
		tasksRequest := gctasks.Request{
			URL:    fmt.Sprintf("%s/promotores/v1/customerapp/orders/on-expire", u.baseURL),
			Method: cloudtaskspb.HttpMethod_POST,
			Body:   eventBuff,
		}
		u.cloudTask.DeferCreateTaskInTime("expire-order", tasksRequest, now.Add(u.orderExpireDuration))
	}

	resp := RegisterOrderResponse{RateDegraded: degraded}
	resp.PopulateFromEntity(order)

	return resp, nil
}

// QuoteOrder implements OrderUseCase. It validates and prices a selection
// without persisting anything.
func (u *orderUseCase) QuoteOrder(ctx context.Context, req QuoteOrderRequest) (QuoteOrderResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := session.GetAccountFromCtx(ctx); err != nil {
		return QuoteOrderResponse{}, err
	}

	periods, err := u.periodRepository.FindMany(ctx, nil)
	if err != nil {
		return QuoteOrderResponse{}, err
	}

	resolver := booking.NewRateResolver(u.logger, u.rateRepository, u.fallbackHourlyRate)
	engine := booking.NewPricingEngine(u.logger, resolver)

	pi, err := u.validateAndPrice(ctx, engine, period.ClassIndex(periods), req.PromotorID, req.Dias, time.Now())
	if err != nil {
		return QuoteOrderResponse{}, err
	}

	resp := QuoteOrderResponse{}
	resp.PopulateFromQuote(req.PromotorID, pi.quote)

	return resp, nil
}

// GetOrderHistory implements OrderUseCase.
func (u *orderUseCase) GetOrderHistory(ctx context.Context) (GetOrderHistoryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	acc, err := session.GetAccountFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := u.orderRepository.FindManyByClienteID(ctx, acc.ID, nil)
	if err != nil {
		return nil, err
	}

	resp := make(GetOrderHistoryResponse, 0, len(orders))

	for _, o := range orders {
		items, err := u.lineItemRepository.FindManyByPedidoID(ctx, o.ID, nil)
		if err != nil {
			return nil, err
		}

		detail := OrderDetailResponse{
			ID:             o.ID,
			DataCriacao:    o.DataCriacao,
			Status:         string(o.Status),
			FormaPagamento: o.FormaPagamento,
			Itens:          make([]ItemResponse, len(items)),
		}

		total := decimal.Zero
		for k, item := range items {
			total = total.Add(item.ValorTotal)
			detail.Itens[k] = ItemResponse{
				PromotorID:       item.PromotorID,
				PromotorNome:     item.PromotorNome,
				DiaSemana:        string(item.DiaSemana),
				PeriodoID:        item.PeriodoID,
				PeriodoDescricao: item.PeriodoDescricao,
				Horas:            item.Horas,
				ValorHora:        item.ValorHora.StringFixed(2),
				ValorTotal:       item.ValorTotal.StringFixed(2),
			}
		}
		detail.ValorTotal = total.Round(2).StringFixed(2)

		resp = append(resp, detail)
	}

	return resp, nil
}

// OnExpireOrder implements OrderUseCase. Orders still pending when the
// deferred task fires are cancelled; anything already confirmed is left
// untouched.
func (u *orderUseCase) OnExpireOrder(ctx context.Context, e ExpireOrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	tx, err := u.orderRepository.BeginTx(ctx)
	if err != nil {
		return err
	}

	o, err := u.orderRepository.FindByID(ctx, e.ID, tx)
	if err != nil {
		u.orderRepository.Rollback(ctx, tx)
		return err
	}

	if !o.Status.CanTransitionTo(StatusCancelado) || o.Status != StatusPendente {
		u.orderRepository.Rollback(ctx, tx)
		return nil
	}

	if err := u.orderRepository.UpdateStatus(ctx, o.ID, StatusCancelado, tx); err != nil {
		u.orderRepository.Rollback(ctx, tx)
		return err
	}

	if err := u.orderRepository.CommitTx(ctx, tx); err != nil {
		return err
	}

	return nil
}
