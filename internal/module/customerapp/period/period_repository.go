package period

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/internal/module/customerapp/booking"
	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

type PeriodRepository interface {
	FindMany(ctx context.Context, tx *sql.Tx) ([]Period, error)
	FindManyByDayClass(ctx context.Context, dayClass booking.DayClass, tx *sql.Tx) ([]Period, error)
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type periodRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewPeriodRepository(logger *logrus.Logger, db *sql.DB) PeriodRepository {
	return &periodRepository{
		logger: logger,
		db:     db,
	}
}

func (r *periodRepository) queryMany(ctx context.Context, cmd sqlCommand, query string, args ...interface{}) ([]Period, error) {
	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of period's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of period's properties")
	}

	defer rows.Close()

	var data = make([]Period, 0)

	for rows.Next() {
		var p Period

		if err := rows.Scan(
			&p.ID, &p.TipoDia, &p.HoraInicio, &p.HoraFim, &p.Descricao,
		); err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of period's properties")
		}

		data = append(data, p)
	}

	return data, nil
}

// FindMany implements PeriodRepository.
func (r *periodRepository) FindMany(ctx context.Context, tx *sql.Tx) ([]Period, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, tipo_dia, hora_inicio, hora_fim, descricao
		FROM periodos
		ORDER BY id
	`

	return r.queryMany(ctx, cmd, query)
}

// FindManyByDayClass implements PeriodRepository.
func (r *periodRepository) FindManyByDayClass(ctx context.Context, dayClass booking.DayClass, tx *sql.Tx) ([]Period, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, tipo_dia, hora_inicio, hora_fim, descricao
		FROM periodos
		WHERE
			tipo_dia = $1
		ORDER BY id
	`

	return r.queryMany(ctx, cmd, query, string(dayClass))
}
