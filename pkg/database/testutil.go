package database

import (
	pgxmock "github.com/pashagolub/pgxmock/v3"
)

// NewMockPool returns a pgxmock pool that satisfies DBTX, so tests can stand
// in for the real pool anywhere a repository or service takes one. Tests
// should finish with ExpectationsWereMet to catch unconsumed expectations.
func NewMockPool() (pgxmock.PgxPoolIface, error) {
	return pgxmock.NewPool()
}
