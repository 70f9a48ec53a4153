package period

import "github.com/aleguimas/promotores/internal/module/customerapp/booking"

// Period is a named sub-window of a day-class, e.g. "Manhã (8h-12h)".
type Period struct {
	ID         int64
	TipoDia    booking.DayClass
	HoraInicio string
	HoraFim    string
	Descricao  string
}

// ClassIndex builds the period-id to day-class lookup the selection
// validator consumes.
func ClassIndex(periods []Period) map[int64]booking.DayClass {
	index := make(map[int64]booking.DayClass, len(periods))
	for _, p := range periods {
		index[p.ID] = p.TipoDia
	}

	return index
}
