package postgre

import (
	"database/sql"

	_ "github.com/lib/pq"

	pkgLog "marketplace-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates the Postgres-backed read repository. The returned value
// implements ProviderRepository, JobRepository and ReviewRepository.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

// Open opens a Postgres connection pool for the given DSN.
func Open(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}

func (r *implRepository) dsn(fn string) string {
	return "internal.assistant.repository.postgre." + fn
}
