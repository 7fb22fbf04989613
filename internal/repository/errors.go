// Package repository is the data-access layer. Each repository translates
// domain commands and filters into GORM queries and maps failures onto the
// sentinel errors below, so callers can tell a missing row from a row owned by
// someone else or from a store failure.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates no row matched.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden indicates the row exists but belongs to another user.
	ErrForbidden = errors.New("record owned by another user")

	// ErrUnknownReference indicates a write referenced a row that does not
	// exist (foreign-key violation).
	ErrUnknownReference = errors.New("referenced record does not exist")

	// ErrConflict indicates the row already exists.
	ErrConflict = errors.New("record already exists")
)

// PostgreSQL error codes.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translate maps store errors that carry domain meaning onto sentinel errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrUnknownReference, pgErr.ConstraintName)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		}
	}
	return err
}

// IsDomainError reports whether err is one of the sentinel errors rather than
// a store failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrUnknownReference) ||
		errors.Is(err, ErrConflict)
}
