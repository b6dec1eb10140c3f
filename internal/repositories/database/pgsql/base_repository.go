package pgsql

import (
	"errors"
	"fmt"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapPgError re-surfaces store-raised constraint violations as application
// errors. Check-constraint (23514) and malformed-numeric (22P02) failures
// become validation errors carrying the store-provided detail; unique
// violations (23505) become duplicates. Anything else passes through.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	detail := pgErr.Detail
	if detail == "" {
		detail = pgErr.Message
	}
	switch pgErr.Code {
	case "23514", "22P02":
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, detail)
	case "23505":
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, detail)
	}
	return err
}
