package client

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

type ClientRepository interface {
	FindByID(ctx context.Context, ID int64, tx *sql.Tx) (Client, error)
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type clientRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewClientRepository(logger *logrus.Logger, db *sql.DB) ClientRepository {
	return &clientRepository{
		logger: logger,
		db:     db,
	}
}

// FindByID implements ClientRepository.
func (r *clientRepository) FindByID(ctx context.Context, ID int64, tx *sql.Tx) (Client, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, nome, email, telefone
		FROM promotores.clientes
		WHERE
			id = $1
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Client{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting client's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID)

	var data Client

	err = row.Scan(
		&data.ID, &data.Nome, &data.Email, &data.Telefone,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Client{}, errors.New(http.StatusNotFound, status.CLIENT_NOT_FOUND, fmt.Sprintf("client with id '%d' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Client{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting client's properties")
	}

	return data, nil
}
