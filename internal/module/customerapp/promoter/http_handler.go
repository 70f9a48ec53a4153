package promoter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/aleguimas/promotores/internal/module/customerapp/booking"
	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/response"
	"github.com/aleguimas/promotores/pkg/status"
)

type HTTPHandler struct {
	Validate           *validator.Validate
	PromoterRepository PromoterRepository
}

func InitHTTPHandler(router *mux.Router, validate *validator.Validate, promoterRepository PromoterRepository) {
	handler := &HTTPHandler{
		Validate:           validate,
		PromoterRepository: promoterRepository,
	}

	router.HandleFunc("/promotores/v1/customerapp/promoters", handler.GetManyPromoter).Methods(http.MethodGet)
}

type GetManyPromoterRequest struct {
	UF       string `validate:"required,len=2"`
	Cidade   string `validate:"required"`
	Bandeira string
	Loja     string
}

type PromoterResponse struct {
	ID              int64                     `json:"id"`
	Nome            string                    `json:"nome"`
	Familia         *string                   `json:"familia"`
	CargoCampo      *string                   `json:"cargo_campo"`
	Cidade          *string                   `json:"cidade"`
	UF              *string                   `json:"uf"`
	Bandeira        *string                   `json:"bandeira"`
	Loja            *string                   `json:"loja"`
	Disponibilidade *booking.WeekAvailability `json:"disponibilidade"`
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

func (handler HTTPHandler) GetManyPromoter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	qs := r.URL.Query()

	req := GetManyPromoterRequest{
		UF:       qs.Get("uf"),
		Cidade:   qs.Get("cidade"),
		Bandeira: qs.Get("bandeira"),
		Loja:     qs.Get("loja"),
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	promoters, err := handler.PromoterRepository.FindManyByRegion(ctx, RegionFilter{
		UF:       req.UF,
		Cidade:   req.Cidade,
		Bandeira: req.Bandeira,
		Loja:     req.Loja,
	}, nil)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	resp := make([]PromoterResponse, len(promoters))
	for k, p := range promoters {
		resp[k] = PromoterResponse{
			ID:         p.ID,
			Nome:       p.Nome,
			Familia:    p.Familia,
			CargoCampo: p.CargoCampo,
			Cidade:     p.Cidade,
			UF:         p.UF,
			Bandeira:   p.Bandeira,
			Loja:       p.Loja,
		}
		if p.Disponibilidade != nil {
			horas := p.Disponibilidade.Horas
			resp[k].Disponibilidade = &horas
		}
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "list of promoters",
		Data:    resp,
	})
}
