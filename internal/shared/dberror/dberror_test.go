package dberror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	customNotFound := apperror.New(apperror.CodeNotFound, "Employee not found", 404)

	tests := []struct {
		name     string
		err      error
		notFound *apperror.AppError
		wantCode string
		wantIs   error
	}{
		{name: "record not found default", err: gorm.ErrRecordNotFound, wantCode: apperror.CodeNotFound, wantIs: apperror.ErrNotFound},
		{name: "record not found custom", err: fmt.Errorf("find: %w", gorm.ErrRecordNotFound), notFound: customNotFound, wantCode: apperror.CodeNotFound, wantIs: customNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: UniqueViolation}, wantCode: apperror.CodeConflict, wantIs: ErrDuplicate},
		{name: "foreign key", err: &pgconn.PgError{Code: ForeignKeyViolation}, wantCode: apperror.CodeInvalidInput, wantIs: ErrInvalidReference},
		{name: "check", err: &pgconn.PgError{Code: CheckViolation}, wantCode: apperror.CodeInvalidInput, wantIs: ErrConstraint},
		{name: "connection", err: errors.New("dial tcp: connection refused"), wantCode: apperror.CodeStorageFailure, wantIs: apperror.ErrStorageFailure},
		{name: "deadline", err: context.DeadlineExceeded, wantCode: apperror.CodeStorageFailure, wantIs: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.err, tt.notFound)
			assert.Equal(t, tt.wantCode, apperror.CodeOf(got))
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}
}

func TestTranslatePassesAppErrorsThrough(t *testing.T) {
	assert.Nil(t, Translate(nil, nil))
	assert.Same(t, apperror.ErrForbidden, Translate(apperror.ErrForbidden, nil))
}

func TestIsConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "uq_employees_email"})
	assert.True(t, IsConstraint(err, UniqueViolation, "uq_employees_email"))
	assert.False(t, IsConstraint(err, UniqueViolation, "uq_employees_phone"))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pgconn.PgError{Code: SerializationFailed}))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: UniqueViolation}))
}
