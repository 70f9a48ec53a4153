package order

import "testing"

func TestStatusTerminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusPendente:    false,
		StatusConfirmado:  false,
		StatusEmAndamento: false,
		StatusConcluido:   true,
		StatusCancelado:   true,
	}

	for s, want := range terminal {
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPendente, StatusConfirmado, true},
		{StatusConfirmado, StatusEmAndamento, true},
		{StatusEmAndamento, StatusConcluido, true},

		{StatusPendente, StatusCancelado, true},
		{StatusConfirmado, StatusCancelado, true},
		{StatusEmAndamento, StatusCancelado, true},

		{StatusPendente, StatusEmAndamento, false},
		{StatusPendente, StatusConcluido, false},
		{StatusConfirmado, StatusPendente, false},
		{StatusConfirmado, StatusConcluido, false},
		{StatusEmAndamento, StatusPendente, false},

		{StatusConcluido, StatusCancelado, false},
		{StatusConcluido, StatusPendente, false},
		{StatusCancelado, StatusPendente, false},
		{StatusCancelado, StatusConfirmado, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
