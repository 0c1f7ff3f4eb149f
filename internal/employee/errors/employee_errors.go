package employeeerrors

import (
	"go-employee-api/internal/shared/apperror"
	"net/http"
)

var (
	ErrAuthenticationRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication required",
		http.StatusUnauthorized,
	)
	ErrInsufficientRoleToCreate = apperror.New(
		apperror.CodeForbidden,
		"Insufficient privileges to create employee with this role",
		http.StatusForbidden,
	)
	ErrInsufficientPrivileges = apperror.New(
		apperror.CodeForbidden,
		"Insufficient privileges",
		http.StatusForbidden,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this email already exists",
		http.StatusConflict,
	)
	ErrDocumentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this document already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeValidationFailed,
		apperror.ValidationPrefix+"Date of birth must be in the format YYYY-MM-DD.",
		http.StatusBadRequest,
	)
	ErrInvalidManagerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid manager ID",
		http.StatusBadRequest,
	)
)

// Catch-all messages for failures the caller cannot act on.
const (
	MsgCreateFailed = "An error occurred while creating the employee"
	MsgUpdateFailed = "An error occurred while updating the employee"
	MsgGetFailed    = "An error occurred while getting the employee"
	MsgListFailed   = "An error occurred while listing the employees"
)
