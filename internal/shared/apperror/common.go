package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidFormat = New(
		CodeInvalidFormat,
		"The provided value has an invalid format",
		http.StatusBadRequest,
	)

	ErrStorageFailure = New(
		CodeStorageFailure,
		"The data store is unavailable, try again later",
		http.StatusServiceUnavailable,
	)
)

// RequiredField reports a missing mandatory field.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

// InvalidField reports a field whose value failed validation.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}

// InvalidFormat reports a value that could not be parsed.
func InvalidFormat(field, expected string) *AppError {
	return New(CodeInvalidFormat, field+" must use the "+expected+" format", http.StatusBadRequest)
}
