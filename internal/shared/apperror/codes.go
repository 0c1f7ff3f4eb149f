package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
