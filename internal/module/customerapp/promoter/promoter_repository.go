package promoter

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

// RegionFilter narrows the directory query. UF and Cidade are mandatory;
// Bandeira and Loja are optional refinements.
type RegionFilter struct {
	UF       string
	Cidade   string
	Bandeira string
	Loja     string
}

type PromoterRepository interface {
	FindManyByRegion(ctx context.Context, filter RegionFilter, tx *sql.Tx) ([]Promoter, error)
	FindByID(ctx context.Context, ID int64, tx *sql.Tx) (Promoter, error)
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type promoterRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewPromoterRepository(logger *logrus.Logger, db *sql.DB) PromoterRepository {
	return &promoterRepository{
		logger: logger,
		db:     db,
	}
}

const promoterColumns = `
	p.id, p.nome, p.cpf, p.familia, p.cargo_campo, p.status_usuario, p.cidade, p.uf, p.bandeira, p.loja,
	d.id, d.promotor_id, d.segunda, d.terca, d.quarta, d.quinta, d.sexta, d.sabado, d.domingo
`

func scanPromoter(row interface{ Scan(...interface{}) error }) (Promoter, error) {
	var p Promoter
	var availID, availPromotorID sql.NullInt64
	var segunda, terca, quarta, quinta, sexta, sabado, domingo sql.NullInt64

	err := row.Scan(
		&p.ID, &p.Nome, &p.CPF, &p.Familia, &p.CargoCampo, &p.StatusUsuario, &p.Cidade, &p.UF, &p.Bandeira, &p.Loja,
		&availID, &availPromotorID, &segunda, &terca, &quarta, &quinta, &sexta, &sabado, &domingo,
	)
	if err != nil {
		return Promoter{}, err
	}

	if availID.Valid {
		avail := &Availability{
			ID:         availID.Int64,
			PromotorID: availPromotorID.Int64,
		}
		avail.Horas.Segunda = segunda.Int64
		avail.Horas.Terca = terca.Int64
		avail.Horas.Quarta = quarta.Int64
		avail.Horas.Quinta = quinta.Int64
		avail.Horas.Sexta = sexta.Int64
		avail.Horas.Sabado = sabado.Int64
		avail.Horas.Domingo = domingo.Int64
		p.Disponibilidade = avail
	}

	return p, nil
}

// FindManyByRegion implements PromoterRepository. Only active promoters
// are listed.
func (r *promoterRepository) FindManyByRegion(ctx context.Context, filter RegionFilter, tx *sql.Tx) ([]Promoter, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT ` + promoterColumns + `
		FROM promotores p
		LEFT JOIN disponibilidades d ON d.promotor_id = p.id
		WHERE
			p.status_usuario = 'Ativo'
		AND
			p.uf = $1
		AND
			p.cidade = $2
	`

	args := []interface{}{filter.UF, filter.Cidade}

	if filter.Bandeira != "" {
		args = append(args, filter.Bandeira)
		query += fmt.Sprintf(" AND p.bandeira = $%d", len(args))
	}

	if filter.Loja != "" {
		args = append(args, filter.Loja)
		query += fmt.Sprintf(" AND p.loja = $%d", len(args))
	}

	query += " ORDER BY p.nome"

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of promoter's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of promoter's properties")
	}

	defer rows.Close()

	var data = make([]Promoter, 0)

	for rows.Next() {
		p, err := scanPromoter(rows)
		if err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of promoter's properties")
		}

		data = append(data, p)
	}

	return data, nil
}

// FindByID implements PromoterRepository.
func (r *promoterRepository) FindByID(ctx context.Context, ID int64, tx *sql.Tx) (Promoter, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT ` + promoterColumns + `
		FROM promotores p
		LEFT JOIN disponibilidades d ON d.promotor_id = p.id
		WHERE
			p.id = $1
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Promoter{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting promoter's properties")
	}
	defer stmt.Close()

	p, err := scanPromoter(stmt.QueryRowContext(ctx, ID))
	if err != nil {
		if err == sql.ErrNoRows {
			return Promoter{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("promoter with id '%d' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Promoter{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting promoter's properties")
	}

	return p, nil
}
