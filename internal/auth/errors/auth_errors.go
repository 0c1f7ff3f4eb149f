package autherrors

import (
	"go-employee-api/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeUnauthorized,
		"Token carries an unknown role",
		http.StatusUnauthorized,
	)
	ErrMissingRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Missing refresh token",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired refresh token",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
)

const (
	MsgLoginFailed   = "An error occurred during login"
	MsgRefreshFailed = "An error occurred while refreshing the token"
	MsgMeFailed      = "An error occurred while getting the current employee"
	MsgLogoutFailed  = "An error occurred during logout"
)
