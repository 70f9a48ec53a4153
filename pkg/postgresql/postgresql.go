package postgresql

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"github.com/aleguimas/promotores/config"
	"github.com/aleguimas/promotores/pkg/applogger"
)

var (
	once sync.Once
	db   *sql.DB
)

func GetDatabase() *sql.DB {
	once.Do(func() {
		c := config.Get()
		logger := applogger.GetLogrus()

		conn, err := sql.Open("postgres", c.Postgres.DSN)
		if err != nil {
			logger.WithError(err).Fatal("unable to open postgres connection")
		}

		conn.SetMaxOpenConns(c.Postgres.MaxOpenConns)
		conn.SetMaxIdleConns(c.Postgres.MaxIdleConns)
		conn.SetConnMaxLifetime(30 * time.Minute)

		db = conn
	})

	return db
}
