package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		got := ToHTTP(fmt.Errorf("outer: %w", ErrInvalidFormat))
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, CodeInvalidFormat, got.Code)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		got := ToHTTP(errors.New("pq: secret detail"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestWithCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := WithCause(ErrStorageFailure, cause)

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeStorageFailure, CodeOf(err))
	assert.Equal(t, "", CodeOf(cause))
}

type clockInput struct {
	StartTime string `json:"start_time" validate:"required,hhmm"`
	Date      string `json:"shift_date" validate:"required,isodate"`
	Phone     string `json:"phone" validate:"omitempty,gtphone"`
}

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	RegisterValidations(v)

	require.NoError(t, v.Struct(clockInput{StartTime: "7:30", Date: "2024-03-01", Phone: "+50212345678"}))

	err := v.Struct(clockInput{StartTime: "24:00", Date: "2024-03-01"})
	require.Error(t, err)
	mapped := MapValidationError(err)
	assert.Equal(t, CodeInvalidFormat, CodeOf(mapped))
	assert.Equal(t, "Start Time must use the HH:MM format", mapped.(*AppError).Message)

	err = v.Struct(clockInput{StartTime: "08:00", Date: "01/03/2024"})
	assert.Equal(t, CodeInvalidFormat, CodeOf(MapValidationError(err)))

	err = v.Struct(clockInput{StartTime: "08:00", Date: "2024-03-01", Phone: "5555"})
	mapped = MapValidationError(err)
	assert.Equal(t, "Phone is invalid", mapped.(*AppError).Message)

	err = v.Struct(clockInput{Date: "2024-03-01"})
	mapped = MapValidationError(err)
	assert.Equal(t, "Start Time is required", mapped.(*AppError).Message)
}
