package booking

// WeekAvailability carries the hours a promoter declared open for each
// weekday. Zero means the day is not available at all.
type WeekAvailability struct {
	Segunda int64 `json:"segunda"`
	Terca   int64 `json:"terca"`
	Quarta  int64 `json:"quarta"`
	Quinta  int64 `json:"quinta"`
	Sexta   int64 `json:"sexta"`
	Sabado  int64 `json:"sabado"`
	Domingo int64 `json:"domingo"`
}

// HoursFor returns the declared hours for the given weekday.
func (a WeekAvailability) HoursFor(day Weekday) int64 {
	switch day {
	case Segunda:
		return a.Segunda
	case Terca:
		return a.Terca
	case Quarta:
		return a.Quarta
	case Quinta:
		return a.Quinta
	case Sexta:
		return a.Sexta
	case Sabado:
		return a.Sabado
	case Domingo:
		return a.Domingo
	}

	return 0
}

// DaySelection is the client's choice for a single weekday. Hours and
// PeriodID only carry meaning when Selected is true.
type DaySelection struct {
	Selected bool  `json:"selected"`
	Hours    int64 `json:"hours"`
	PeriodID int64 `json:"period_id"`
}

// WeekSelection is the fixed seven-day shape received from the storefront.
// Keeping one field per weekday rules out missing or extraneous day keys.
type WeekSelection struct {
	Segunda DaySelection `json:"segunda"`
	Terca   DaySelection `json:"terca"`
	Quarta  DaySelection `json:"quarta"`
	Quinta  DaySelection `json:"quinta"`
	Sexta   DaySelection `json:"sexta"`
	Sabado  DaySelection `json:"sabado"`
	Domingo DaySelection `json:"domingo"`
}

// DayFor returns the selection for the given weekday.
func (s WeekSelection) DayFor(day Weekday) DaySelection {
	switch day {
	case Segunda:
		return s.Segunda
	case Terca:
		return s.Terca
	case Quarta:
		return s.Quarta
	case Quinta:
		return s.Quinta
	case Sexta:
		return s.Sexta
	case Sabado:
		return s.Sabado
	case Domingo:
		return s.Domingo
	}

	return DaySelection{}
}

// SelectedDay is a normalized, validated selection tuple.
type SelectedDay struct {
	Day      Weekday
	Hours    int64
	PeriodID int64
}
