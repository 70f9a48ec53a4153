package order

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

type LineItemRepository interface {
	Save(ctx context.Context, item LineItem, tx *sql.Tx) error
	FindManyByPedidoID(ctx context.Context, pedidoID int64, tx *sql.Tx) ([]LineItem, error)
}

type lineItemRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewLineItemRepository(logger *logrus.Logger, db *sql.DB) LineItemRepository {
	return &lineItemRepository{
		logger: logger,
		db:     db,
	}
}

// Save implements LineItemRepository.
func (r *lineItemRepository) Save(ctx context.Context, item LineItem, tx *sql.Tx) error {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		INSERT INTO promotores.selecoes_promotor
		(
			pedido_id, promotor_id, dia_semana, periodo_id, horas, valor_hora, valor_total
		)
		VALUES
		(
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving order item's properties")
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		item.PedidoID, item.PromotorID, string(item.DiaSemana), item.PeriodoID, item.Horas, item.ValorHora, item.ValorTotal,
	)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving order item's properties")
	}

	return nil
}

// FindManyByPedidoID implements LineItemRepository. Items come back in
// insertion order, which is the canonical weekday order they were priced
// in; promoter name and period label are joined in for display.
func (r *lineItemRepository) FindManyByPedidoID(ctx context.Context, pedidoID int64, tx *sql.Tx) ([]LineItem, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			s.id, s.pedido_id, s.promotor_id, p.nome, s.dia_semana, s.periodo_id, pe.descricao, s.horas, s.valor_hora, s.valor_total
		FROM promotores.selecoes_promotor s
		JOIN promotores p ON p.id = s.promotor_id
		JOIN periodos pe ON pe.id = s.periodo_id
		WHERE
			s.pedido_id = $1
		ORDER BY s.id
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order item's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, pedidoID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order item's properties")
	}

	defer rows.Close()

	var data = make([]LineItem, 0)

	for rows.Next() {
		var item LineItem

		if err := rows.Scan(
			&item.ID, &item.PedidoID, &item.PromotorID, &item.PromotorNome, &item.DiaSemana, &item.PeriodoID, &item.PeriodoDescricao, &item.Horas, &item.ValorHora, &item.ValorTotal,
		); err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order item's properties")
		}

		data = append(data, item)
	}

	return data, nil
}
