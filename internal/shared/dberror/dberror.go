// Package dberror maps storage-layer failures onto the apperror taxonomy so
// services never inspect driver codes themselves.
package dberror

import (
	"context"
	"errors"
	"net/http"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	NotNullViolation    = "23502"
	CheckViolation      = "23514"
	SerializationFailed = "40001"
	DeadlockDetected    = "40P01"
)

var (
	ErrDuplicate = apperror.New(
		apperror.CodeConflict,
		"A record with the same unique value already exists",
		http.StatusConflict,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"A referenced record does not exist",
		http.StatusBadRequest,
	)
	ErrConstraint = apperror.New(
		apperror.CodeInvalidInput,
		"The record violates a data constraint",
		http.StatusBadRequest,
	)
)

// PgError extracts the PostgreSQL error from err, if any.
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsConstraint reports whether err is a violation of the named constraint.
func IsConstraint(err error, code, constraint string) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == code && pgErr.ConstraintName == constraint
}

// Translate returns err unchanged when it is already an AppError, and
// otherwise classifies it. notFound is used for gorm.ErrRecordNotFound; pass
// nil to fall back to apperror.ErrNotFound.
func Translate(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFound == nil {
			notFound = apperror.ErrNotFound
		}
		return apperror.WithCause(notFound, err)
	}

	if pgErr, ok := PgError(err); ok {
		switch pgErr.Code {
		case UniqueViolation:
			return apperror.WithCause(ErrDuplicate, err)
		case ForeignKeyViolation:
			return apperror.WithCause(ErrInvalidReference, err)
		case NotNullViolation, CheckViolation:
			return apperror.WithCause(ErrConstraint, err)
		}
	}

	return apperror.WithCause(apperror.ErrStorageFailure, err)
}

// IsRetryable reports failures a caller may retry as-is.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if pgErr, ok := PgError(err); ok {
		return pgErr.Code == SerializationFailed || pgErr.Code == DeadlockDetected
	}
	return errors.Is(err, context.DeadlineExceeded)
}
