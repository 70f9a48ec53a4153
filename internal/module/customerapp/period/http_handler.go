package period

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aleguimas/promotores/internal/module/customerapp/booking"
	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/response"
	"github.com/aleguimas/promotores/pkg/status"
)

type HTTPHandler struct {
	PeriodRepository PeriodRepository
}

func InitHTTPHandler(router *mux.Router, periodRepository PeriodRepository) {
	handler := &HTTPHandler{
		PeriodRepository: periodRepository,
	}

	router.HandleFunc("/promotores/v1/customerapp/periods", handler.GetManyPeriod).Methods(http.MethodGet)
}

type PeriodResponse struct {
	ID         int64  `json:"id"`
	TipoDia    string `json:"tipo_dia"`
	HoraInicio string `json:"hora_inicio"`
	HoraFim    string `json:"hora_fim"`
	Descricao  string `json:"descricao"`
}

func (handler HTTPHandler) GetManyPeriod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var periods []Period
	var err error

	if tipoDia := r.URL.Query().Get("tipo_dia"); tipoDia != "" {
		periods, err = handler.PeriodRepository.FindManyByDayClass(ctx, booking.DayClass(tipoDia), nil)
	} else {
		periods, err = handler.PeriodRepository.FindMany(ctx, nil)
	}

	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	resp := make([]PeriodResponse, len(periods))
	for k, p := range periods {
		resp[k] = PeriodResponse{
			ID:         p.ID,
			TipoDia:    string(p.TipoDia),
			HoraInicio: p.HoraInicio,
			HoraFim:    p.HoraFim,
			Descricao:  p.Descricao,
		}
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "list of periods",
		Data:    resp,
	})
}
