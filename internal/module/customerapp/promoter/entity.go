package promoter

import "github.com/aleguimas/promotores/internal/module/customerapp/booking"

// Promoter is a bookable staff member from the promotores table.
type Promoter struct {
	ID            int64
	Nome          string
	CPF           *string
	Familia       *string
	CargoCampo    *string
	StatusUsuario string
	Cidade        *string
	UF            *string
	Bandeira      *string
	Loja          *string

	Disponibilidade *Availability
}

const statusAtivo = "Ativo"

// Active reports whether the promoter can be booked.
func (p Promoter) Active() bool {
	return p.StatusUsuario == statusAtivo
}

// Availability is the promoter's declared open hours per weekday, one row
// per promoter in the disponibilidades table.
type Availability struct {
	ID         int64
	PromotorID int64
	Horas      booking.WeekAvailability
}
