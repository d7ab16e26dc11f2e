package employee

import (
	employeeerrors "github.com/LiquidSebabas/InnOutPG/internal/employee/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/dberror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if pgErr, ok := dberror.PgError(err); ok && pgErr.Code == dberror.UniqueViolation {
		switch pgErr.ConstraintName {
		case "uq_employees_email":
			return apperror.WithCause(employeeerrors.ErrEmailAlreadyExists, err)
		case "uq_employees_phone":
			return apperror.WithCause(employeeerrors.ErrPhoneAlreadyExists, err)
		}
	}

	return dberror.Translate(err, employeeerrors.ErrEmployeeNotFound)
}
