package assignmenterrors

import (
	"net/http"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment not found",
		http.StatusNotFound,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found or inactive",
		http.StatusNotFound,
	)

	ErrAreaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Area not found or inactive in this company",
		http.StatusNotFound,
	)

	ErrScheduleConflict = apperror.New(
		apperror.CodeConflict,
		"The employee already has an overlapping shift on this date",
		http.StatusConflict,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidTransition,
		"The assignment cannot move to the requested status",
		http.StatusConflict,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of assigned, completed, cancelled, absent",
		http.StatusBadRequest,
	)

	ErrInvalidAssignmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assignment ID",
		http.StatusBadRequest,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidAreaID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid area ID",
		http.StatusBadRequest,
	)

	ErrCompanyRequired = apperror.RequiredField("Company Id")

	ErrAreaRequired = apperror.RequiredField("Area Id")

	ErrEmptyTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start time and end time must differ",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"The start date must be on or before the end date",
		http.StatusBadRequest,
	)

	ErrDateRangeTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"The date range may span at most 93 days",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.InvalidFormat("Date", "YYYY-MM-DD")
)
