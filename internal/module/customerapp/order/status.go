package order

// Status values are the strings persisted in the pedidos.status column.
type Status string

const (
	StatusPendente    Status = "pendente"
	StatusConfirmado  Status = "confirmado"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluido   Status = "concluido"
	StatusCancelado   Status = "cancelado"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusConcluido || s == StatusCancelado
}

// CanTransitionTo reports whether the status machine allows moving from
// s to next. The forward path is pendente, confirmado, em_andamento,
// concluido; cancelado is reachable from any non-terminal status.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Terminal() {
		return false
	}

	if next == StatusCancelado {
		return true
	}

	switch s {
	case StatusPendente:
		return next == StatusConfirmado
	case StatusConfirmado:
		return next == StatusEmAndamento
	case StatusEmAndamento:
		return next == StatusConcluido
	}

	return false
}
