package booking

import (
	"testing"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

func testPeriodClasses() map[int64]DayClass {
	return map[int64]DayClass{
		1: DayClassWeekday,
		2: DayClassWeekday,
		3: DayClassWeekday,
		4: DayClassSabado,
		5: DayClassSabado,
		6: DayClassDomingo,
	}
}

func assertStatus(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected an error with status %s, got nil", want)
	}

	ae := errors.Destruct(err)
	if ae.Status != want {
		t.Fatalf("expected status %s, got %s (%s)", want, ae.Status, ae.Message)
	}
}

func TestValidateRejectsUnavailableDay(t *testing.T) {
	availability := WeekAvailability{Segunda: 8}

	selection := WeekSelection{
		Domingo: DaySelection{Selected: true, Hours: 4, PeriodID: 6},
	}

	_, err := Validate(availability, testPeriodClasses(), selection)
	assertStatus(t, err, status.INVALID_HOURS)
}

func TestValidateHoursBoundary(t *testing.T) {
	availability := WeekAvailability{Segunda: 8}

	exact := WeekSelection{
		Segunda: DaySelection{Selected: true, Hours: 8, PeriodID: 1},
	}
	if _, err := Validate(availability, testPeriodClasses(), exact); err != nil {
		t.Fatalf("hours equal to availability must be accepted, got %v", err)
	}

	over := WeekSelection{
		Segunda: DaySelection{Selected: true, Hours: 9, PeriodID: 1},
	}
	_, err := Validate(availability, testPeriodClasses(), over)
	assertStatus(t, err, status.INVALID_HOURS)
}

func TestValidateRejectsNonPositiveHours(t *testing.T) {
	availability := WeekAvailability{Segunda: 8}

	selection := WeekSelection{
		Segunda: DaySelection{Selected: true, Hours: 0, PeriodID: 1},
	}

	_, err := Validate(availability, testPeriodClasses(), selection)
	assertStatus(t, err, status.INVALID_HOURS)
}

func TestValidateRejectsPeriodFromWrongDayClass(t *testing.T) {
	availability := WeekAvailability{Segunda: 8, Sabado: 4}

	cases := []struct {
		name      string
		selection WeekSelection
	}{
		{
			name: "saturday period on a weekday",
			selection: WeekSelection{
				Segunda: DaySelection{Selected: true, Hours: 4, PeriodID: 4},
			},
		},
		{
			name: "weekday period on saturday",
			selection: WeekSelection{
				Sabado: DaySelection{Selected: true, Hours: 4, PeriodID: 1},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(availability, testPeriodClasses(), tc.selection)
			assertStatus(t, err, status.INVALID_PERIOD)
		})
	}
}

func TestValidateRejectsMissingPeriod(t *testing.T) {
	availability := WeekAvailability{Segunda: 8}

	unknown := WeekSelection{
		Segunda: DaySelection{Selected: true, Hours: 4, PeriodID: 99},
	}
	_, err := Validate(availability, testPeriodClasses(), unknown)
	assertStatus(t, err, status.PERIOD_NOT_FOUND)

	unset := WeekSelection{
		Segunda: DaySelection{Selected: true, Hours: 4},
	}
	_, err = Validate(availability, testPeriodClasses(), unset)
	assertStatus(t, err, status.INVALID_PERIOD)
}

func TestValidateRejectsEmptySelection(t *testing.T) {
	availability := WeekAvailability{Segunda: 8, Terca: 8}

	_, err := Validate(availability, testPeriodClasses(), WeekSelection{})
	assertStatus(t, err, status.NO_SELECTION)
}

func TestValidateNormalizesToCanonicalOrder(t *testing.T) {
	availability := WeekAvailability{Segunda: 8, Sexta: 6, Sabado: 4}

	selection := WeekSelection{
		Sabado:  DaySelection{Selected: true, Hours: 4, PeriodID: 4},
		Segunda: DaySelection{Selected: true, Hours: 8, PeriodID: 1},
		Sexta:   DaySelection{Selected: true, Hours: 6, PeriodID: 2},
	}

	days, err := Validate(availability, testPeriodClasses(), selection)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Weekday{Segunda, Sexta, Sabado}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}

	for i, day := range days {
		if day.Day != want[i] {
			t.Fatalf("expected day %s at position %d, got %s", want[i], i, day.Day)
		}
	}
}

func TestValidateIgnoresUnchosenDays(t *testing.T) {
	availability := WeekAvailability{Segunda: 8}

	// Stale hours and period on an unchosen day carry no constraint.
	selection := WeekSelection{
		Segunda: DaySelection{Selected: true, Hours: 8, PeriodID: 1},
		Terca:   DaySelection{Selected: false, Hours: 99, PeriodID: 99},
	}

	days, err := Validate(availability, testPeriodClasses(), selection)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(days) != 1 || days[0].Day != Segunda {
		t.Fatalf("expected only segunda to be selected, got %v", days)
	}
}
