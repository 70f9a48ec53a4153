package booking

// Weekday values double as the dia_semana column values and the JSON keys
// used by the storefront.
type Weekday string

const (
	Segunda Weekday = "segunda"
	Terca   Weekday = "terca"
	Quarta  Weekday = "quarta"
	Quinta  Weekday = "quinta"
	Sexta   Weekday = "sexta"
	Sabado  Weekday = "sabado"
	Domingo Weekday = "domingo"
)

// Weekdays returns the canonical Monday-to-Sunday ordering. Validation
// output, pricing lines and persisted line items all follow this order.
func Weekdays() [7]Weekday {
	return [7]Weekday{Segunda, Terca, Quarta, Quinta, Sexta, Sabado, Domingo}
}

// DayClass values mirror the tipo_dia column of the periodos table.
type DayClass string

const (
	DayClassWeekday DayClass = "segunda_sexta"
	DayClassSabado  DayClass = "sabado"
	DayClassDomingo DayClass = "domingo"
)

// ClassOf maps a weekday to the day-class governing which periods are
// selectable on it.
func ClassOf(day Weekday) DayClass {
	switch day {
	case Sabado:
		return DayClassSabado
	case Domingo:
		return DayClassDomingo
	default:
		return DayClassWeekday
	}
}

var weekdayLabels = map[Weekday]string{
	Segunda: "Segunda-feira",
	Terca:   "Terça-feira",
	Quarta:  "Quarta-feira",
	Quinta:  "Quinta-feira",
	Sexta:   "Sexta-feira",
	Sabado:  "Sábado",
	Domingo: "Domingo",
}

// Label returns the display name of the weekday.
func (d Weekday) Label() string {
	return weekdayLabels[d]
}
