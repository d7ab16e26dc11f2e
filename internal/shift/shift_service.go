package shift

import (
	"context"
	"time"

	shifterrors "github.com/LiquidSebabas/InnOutPG/internal/shift/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/dberror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	GetAvailable(ctx context.Context, q AvailableQuery) ([]ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAvailable(ctx context.Context, q AvailableQuery) ([]ShiftResponse, error) {
	date, err := time.Parse(time.DateOnly, q.Date)
	if err != nil {
		return nil, shifterrors.ErrInvalidDate
	}
	if q.CompanyID != nil {
		if _, err := uuid.Parse(*q.CompanyID); err != nil {
			return nil, shifterrors.ErrInvalidCompanyID
		}
	}
	if q.AreaID != nil {
		if _, err := uuid.Parse(*q.AreaID); err != nil {
			return nil, shifterrors.ErrInvalidAreaID
		}
	}

	shifts, err := s.repo.FindAvailable(ctx, AvailableFilter{
		Date:      date,
		CompanyID: q.CompanyID,
		AreaID:    q.AreaID,
	})
	if err != nil {
		return nil, dberror.Translate(err, nil)
	}

	resp := make([]ShiftResponse, len(shifts))
	for i, sh := range shifts {
		resp[i] = mapToResponse(sh)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ShiftResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftID
	}

	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShiftResponse{}, dberror.Translate(err, shifterrors.ErrShiftNotFound)
	}
	return mapToResponse(*detail), nil
}
