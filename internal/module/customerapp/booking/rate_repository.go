package booking

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

type RateRepository interface {
	FindApplicable(ctx context.Context, promotorID, periodoID int64, asOf time.Time, tx *sql.Tx) (RateEntry, error)
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type rateRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewRateRepository(logger *logrus.Logger, db *sql.DB) RateRepository {
	return &rateRepository{
		logger: logger,
		db:     db,
	}
}

// FindApplicable implements RateRepository. It returns the rate entry whose
// validity interval contains asOf; when more than one qualifies the entry
// with the most recent start wins.
func (r *rateRepository) FindApplicable(ctx context.Context, promotorID, periodoID int64, asOf time.Time, tx *sql.Tx) (RateEntry, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, promotor_id, periodo_id, valor_hora, data_inicio, data_fim
		FROM valores_promotor_periodo
		WHERE
			promotor_id = $1
		AND
			periodo_id = $2
		AND
			data_inicio <= $3
		AND
			(data_fim IS NULL OR data_fim > $3)
		ORDER BY data_inicio DESC
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return RateEntry{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting the hourly rate")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, promotorID, periodoID, asOf)

	var data RateEntry
	var dataFim sql.NullTime

	err = row.Scan(
		&data.ID, &data.PromotorID, &data.PeriodoID, &data.ValorHora, &data.DataInicio, &dataFim,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RateEntry{}, errors.New(http.StatusNotFound, status.NOT_FOUND,
				fmt.Sprintf("no hourly rate found for promoter %d and period %d", promotorID, periodoID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return RateEntry{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting the hourly rate")
	}

	if dataFim.Valid {
		data.DataFim = &dataFim.Time
	}

	return data, nil
}
