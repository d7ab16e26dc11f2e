package areaerrors

import (
	"net/http"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
)

var (
	ErrAreaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Area not found",
		http.StatusNotFound,
	)

	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrInvalidAreaID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid area ID",
		http.StatusBadRequest,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Area name is required",
		http.StatusBadRequest,
	)
)
