package order

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

type OrderRepository interface {
	BeginTx(ctx context.Context) (*sql.Tx, error)
	CommitTx(ctx context.Context, tx *sql.Tx) error
	Rollback(ctx context.Context, tx *sql.Tx) error

	Save(ctx context.Context, o Order, tx *sql.Tx) (int64, error)
	FindByID(ctx context.Context, ID int64, tx *sql.Tx) (Order, error)
	FindManyByClienteID(ctx context.Context, clienteID int64, tx *sql.Tx) ([]Order, error)
	UpdateStatus(ctx context.Context, ID int64, newStatus Status, tx *sql.Tx) error
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type orderRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewOrderRepository(logger *logrus.Logger, db *sql.DB) OrderRepository {
	return &orderRepository{
		logger: logger,
		db:     db,
	}
}

// BeginTx implements OrderRepository.
func (r *orderRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to begin transaction")
	}

	return tx, nil
}

// CommitTx implements OrderRepository.
func (r *orderRepository) CommitTx(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to commit transaction")
	}

	return nil
}

// Rollback implements OrderRepository.
func (r *orderRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to rollback transaction")
	}

	return nil
}

// Save implements OrderRepository. It returns the generated pedido id.
func (r *orderRepository) Save(ctx context.Context, o Order, tx *sql.Tx) (int64, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		INSERT INTO promotores.pedidos
		(
			cliente_id, forma_pagamento, status, data_criacao
		)
		VALUES
		(
			$1, $2, $3, $4
		)
		RETURNING id
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return 0, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving order's properties")
	}
	defer stmt.Close()

	var ID int64

	err = stmt.QueryRowContext(ctx, o.ClienteID, o.FormaPagamento, string(o.Status), o.DataCriacao).Scan(&ID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return 0, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving order's properties")
	}

	return ID, nil
}

// FindByID implements OrderRepository.
func (r *orderRepository) FindByID(ctx context.Context, ID int64, tx *sql.Tx) (Order, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, cliente_id, forma_pagamento, status, data_criacao
		FROM promotores.pedidos
		WHERE
			id = $1
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Order{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting order's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID)

	var data Order

	err = row.Scan(
		&data.ID, &data.ClienteID, &data.FormaPagamento, &data.Status, &data.DataCriacao,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("order with id '%d' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Order{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting order's properties")
	}

	return data, nil
}

// FindManyByClienteID implements OrderRepository. Orders are listed newest
// first.
func (r *orderRepository) FindManyByClienteID(ctx context.Context, clienteID int64, tx *sql.Tx) ([]Order, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, cliente_id, forma_pagamento, status, data_criacao
		FROM promotores.pedidos
		WHERE
			cliente_id = $1
		ORDER BY id DESC
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, clienteID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order's properties")
	}

	defer rows.Close()

	var data = make([]Order, 0)

	for rows.Next() {
		var o Order

		if err := rows.Scan(
			&o.ID, &o.ClienteID, &o.FormaPagamento, &o.Status, &o.DataCriacao,
		); err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order's properties")
		}

		data = append(data, o)
	}

	return data, nil
}

// UpdateStatus implements OrderRepository.
func (r *orderRepository) UpdateStatus(ctx context.Context, ID int64, newStatus Status, tx *sql.Tx) error {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		UPDATE promotores.pedidos
		SET
			status = $1
		WHERE id = $2
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while updating order's properties")
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, string(newStatus), ID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while updating order's properties")
	}

	return nil
}
