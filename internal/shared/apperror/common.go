package apperror

import (
	"net/http"
	"strings"
)

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
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// ValidationPrefix starts every aggregated validation message.
const ValidationPrefix = "Validation failed: "

// Validation aggregates entity notifications into a single error. The
// message joins them with ", " in the order the rules ran.
func Validation(messages []string) *AppError {
	details := make([]string, len(messages))
	copy(details, messages)
	return &AppError{
		Code:       CodeValidationFailed,
		Message:    ValidationPrefix + strings.Join(messages, ", "),
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// Unexpected hides err behind a generic message. The cause stays reachable
// through errors.Is/As and logs, never through the HTTP body.
func Unexpected(err error, message string) *AppError {
	return &AppError{
		Code:       CodeInternalError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}
