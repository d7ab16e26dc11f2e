package assignment

import (
	assignmenterrors "github.com/LiquidSebabas/InnOutPG/internal/assignment/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/dberror"
)

func mapRepositoryError(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	pgErr, ok := dberror.PgError(err)
	if ok {
		switch pgErr.ConstraintName {
		case "fk_assignments_employee":
			return apperror.WithCause(assignmenterrors.ErrEmployeeNotFound, err)
		case "fk_assignments_shift":
			return apperror.WithCause(assignmenterrors.ErrAssignmentNotFound, err)
		case "fk_shifts_company":
			return apperror.WithCause(assignmenterrors.ErrCompanyNotFound, err)
		case "fk_shifts_area":
			return apperror.WithCause(assignmenterrors.ErrAreaNotFound, err)
		case "chk_assignments_status":
			return apperror.WithCause(assignmenterrors.ErrInvalidStatus, err)
		}
	}

	return dberror.Translate(err, notFound)
}
