package booking

import (
	"fmt"
	"net/http"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

// Validate checks a week of selections against the promoter's declared
// availability and the period catalog, and returns the chosen days
// normalized into canonical Monday-to-Sunday order.
//
// periodClasses maps period id to its day-class; days whose Selected flag
// is false are ignored entirely.
func Validate(availability WeekAvailability, periodClasses map[int64]DayClass, selection WeekSelection) ([]SelectedDay, error) {
	selected := make([]SelectedDay, 0, 7)

	for _, day := range Weekdays() {
		ds := selection.DayFor(day)
		if !ds.Selected {
			continue
		}

		available := availability.HoursFor(day)
		if ds.Hours <= 0 || ds.Hours > available {
			return nil, errors.New(http.StatusBadRequest, status.INVALID_HOURS,
				fmt.Sprintf("invalid hours for %s: requested %d, available %d", day, ds.Hours, available))
		}

		if ds.PeriodID == 0 {
			return nil, errors.New(http.StatusBadRequest, status.INVALID_PERIOD,
				fmt.Sprintf("no period selected for %s", day))
		}

		class, ok := periodClasses[ds.PeriodID]
		if !ok {
			return nil, errors.New(http.StatusBadRequest, status.PERIOD_NOT_FOUND,
				fmt.Sprintf("period %d selected for %s does not exist", ds.PeriodID, day))
		}

		if class != ClassOf(day) {
			return nil, errors.New(http.StatusBadRequest, status.INVALID_PERIOD,
				fmt.Sprintf("period %d is not available on %s", ds.PeriodID, day))
		}

		selected = append(selected, SelectedDay{
			Day:      day,
			Hours:    ds.Hours,
			PeriodID: ds.PeriodID,
		})
	}

	if len(selected) == 0 {
		return nil, errors.New(http.StatusBadRequest, status.NO_SELECTION, "no day was selected")
	}

	return selected, nil
}
