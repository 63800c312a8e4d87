package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicate signals a unique key violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

// IsForeignKey signals a foreign key violation, e.g. an unknown patient id.
func IsForeignKey(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23503"
}

// IsNotFound signals an empty single-row result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
