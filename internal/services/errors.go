package services

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// Failure taxonomy surfaced to the HTTP layer. Handlers map these to status
// codes with errors.Is; none of them mutate state.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
)

// notFoundOr translates a missing row into ErrNotFound and passes other
// storage errors through.
func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
