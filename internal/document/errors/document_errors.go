package documenterrors

import (
	"net/http"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)

	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"Days must be between 1 and 365",
		http.StatusBadRequest,
	)
)
