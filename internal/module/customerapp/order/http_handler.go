package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/aleguimas/promotores/internal/pkg/middleware"
	"github.com/aleguimas/promotores/pkg/errors"
	publicMiddleware "github.com/aleguimas/promotores/pkg/middleware"
	"github.com/aleguimas/promotores/pkg/response"
	"github.com/aleguimas/promotores/pkg/status"
)

type HTTPHandler struct {
	Validate     *validator.Validate
	OrderUseCase OrderUseCase
}

func InitHTTPHandler(router *mux.Router, customerSession *middleware.CustomerSession, validate *validator.Validate, orderUseCase OrderUseCase) {
	handler := &HTTPHandler{
		Validate:     validate,
		OrderUseCase: orderUseCase,
	}

	router.HandleFunc("/promotores/v1/customerapp/orders", publicMiddleware.SetRouteChain(handler.RegisterOrder, customerSession.Verify)).Methods(http.MethodPost)
	router.HandleFunc("/promotores/v1/customerapp/orders", publicMiddleware.SetRouteChain(handler.GetOrderHistory, customerSession.Verify)).Methods(http.MethodGet)
	router.HandleFunc("/promotores/v1/customerapp/orders/quote", publicMiddleware.SetRouteChain(handler.QuoteOrder, customerSession.Verify)).Methods(http.MethodPost)
	router.HandleFunc("/promotores/v1/customerapp/orders/on-expire", publicMiddleware.SetRouteChain(handler.OnExpireOrder)).Methods(http.MethodPost)
}

func (handler HTTPHandler) validate(ctx context.Context, payload interface{}) error {
	err := handler.Validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	errorFields := err.(validator.ValidationErrors)

	errMessages := make([]string, len(errorFields))

	for k, errorField := range errorFields {
		errMessages[k] = fmt.Sprintf("invalid '%s' with value '%v'", errorField.Field(), errorField.Value())
	}

	return fmt.Errorf(strings.Join(errMessages, ", "))
}

func (handler HTTPHandler) RegisterOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := RegisterOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.OrderUseCase.RegisterOrder(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusCreated, response.RESTEnvelope{
		Status:  status.CREATED,
		Message: "order has been successfully registered",
		Data:    resp,
	})
}

func (handler HTTPHandler) QuoteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := QuoteOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.OrderUseCase.QuoteOrder(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "order quote",
		Data:    resp,
	})
}

func (handler HTTPHandler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.OrderUseCase.GetOrderHistory(ctx)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "list of orders",
		Data:    resp,
	})
}

func (handler HTTPHandler) OnExpireOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	e := ExpireOrderEvent{}
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	if err := handler.OrderUseCase.OnExpireOrder(ctx, e); err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "order has been successfully expired",
	})
}
