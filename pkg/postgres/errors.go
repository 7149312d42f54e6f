package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation    = "23505"
	exclusionViolation = "23P01"
)

// IsConstraintViolation reports a unique or exclusion constraint failure.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation || pgErr.Code == exclusionViolation
	}

	return false
}
