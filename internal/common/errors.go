package common

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrConflict       = errors.New("resource conflict") // e.g., user name already taken
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden access")
	ErrBadRequest     = errors.New("bad request")
	ErrValidation     = errors.New("validation failed")
	ErrInternalServer = errors.New("internal server error")
)

// EnvelopeCodeFromError maps domain errors to the application result codes
// used in the response envelope.
func EnvelopeCodeFromError(err error) int {
	if err == nil {
		return CodeOK
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return CodeDomain
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return CodeValidation
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) {
		return CodeAuth
	}
	return CodeStoreError
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Repositories use it to translate the users.name index into a
// domain conflict.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
