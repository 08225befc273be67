package balancestore

import (
	"database/sql"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// WithDSN sets the database location, e.g. a file path or ":memory:".
func WithDSN(dsn string) types.Option[*Store] {
	return func(s *Store) {
		s.dsn = dsn
	}
}

// WithDriver overrides the database/sql driver name.
func WithDriver(name string) types.Option[*Store] {
	return func(s *Store) {
		if name != "" {
			s.driverName = name
		}
	}
}

// WithDB injects an already open handle; DSN and driver are ignored then.
func WithDB(db *sql.DB) types.Option[*Store] {
	return func(s *Store) {
		s.db = db
	}
}

// WithTable overrides the snapshot table name.
func WithTable(table string) types.Option[*Store] {
	return func(s *Store) {
		if table != "" {
			s.table = table
		}
	}
}

// WithLogger attaches loggers at construction.
func WithLogger(loggers ...types.Logger) types.Option[*Store] {
	return func(s *Store) {
		s.ConnectLogger(loggers...)
	}
}
