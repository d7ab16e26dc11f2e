package shift_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shift"
	shifterrors "github.com/LiquidSebabas/InnOutPG/internal/shift/errors"
	shiftMock "github.com/LiquidSebabas/InnOutPG/internal/shift/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/LiquidSebabas/InnOutPG/internal/timeinterval"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestShiftService_GetAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("bad date", func(t *testing.T) {
		svc := shift.NewService(shiftMock.NewMockRepository(gomock.NewController(t)))
		_, err := svc.GetAvailable(ctx, shift.AvailableQuery{Date: "2025/03/01"})
		assert.Equal(t, apperror.CodeInvalidFormat, apperror.CodeOf(err))
	})

	t.Run("bad company id", func(t *testing.T) {
		svc := shift.NewService(shiftMock.NewMockRepository(gomock.NewController(t)))
		bad := "x"
		_, err := svc.GetAvailable(ctx, shift.AvailableQuery{Date: "2025-03-01", CompanyID: &bad})
		assert.ErrorIs(t, err, shifterrors.ErrInvalidCompanyID)
	})

	t.Run("maps rows with derived fields", func(t *testing.T) {
		repo := shiftMock.NewMockRepository(gomock.NewController(t))
		svc := shift.NewService(repo)
		companyID := uuid.NewString()

		repo.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f shift.AvailableFilter) ([]shift.ShiftDetail, error) {
				assert.Equal(t, "2025-03-01", f.Date.Format(time.DateOnly))
				require.NotNil(t, f.CompanyID)
				assert.Equal(t, companyID, *f.CompanyID)
				assert.Nil(t, f.AreaID)
				return []shift.ShiftDetail{{
					Shift: shift.Shift{
						ID:        uuid.New(),
						ShiftDate: f.Date,
						StartTime: "22:00:00",
						EndTime:   "06:00:00",
					},
					CompanyName:   "Hotel Real",
					AreaName:      "Cocina",
					AssignedCount: 2,
				}}, nil
			})

		resp, err := svc.GetAvailable(ctx, shift.AvailableQuery{Date: "2025-03-01", CompanyID: &companyID})
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "22:00", resp[0].StartTime)
		assert.Equal(t, "06:00", resp[0].EndTime)
		assert.Equal(t, timeinterval.ShiftNight, resp[0].ShiftType)
		assert.Equal(t, 8.0, resp[0].DurationHours)
		assert.Equal(t, int64(2), resp[0].AssignedCount)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := shiftMock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: refused"))

		_, err := shift.NewService(repo).GetAvailable(ctx, shift.AvailableQuery{Date: "2025-03-01"})
		assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
	})
}

func TestShiftService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		svc := shift.NewService(shiftMock.NewMockRepository(gomock.NewController(t)))
		_, err := svc.GetByID(ctx, "42")
		assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := shiftMock.NewMockRepository(gomock.NewController(t))
		id := uuid.NewString()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := shift.NewService(repo).GetByID(ctx, id)
		assert.ErrorIs(t, err, shifterrors.ErrShiftNotFound)
	})
}
