package employee

import (
	"errors"
	"strings"

	employeeerrors "go-employee-api/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	constraintUniqueEmail    = "uq_employees_email"
	constraintUniqueDocument = "uq_employees_document"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case constraintUniqueEmail:
				return employeeerrors.ErrEmailAlreadyExists
			case constraintUniqueDocument:
				return employeeerrors.ErrDocumentAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintUniqueEmail) {
		return employeeerrors.ErrEmailAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintUniqueDocument) {
		return employeeerrors.ErrDocumentAlreadyExists
	}

	return err
}
