package shift_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LiquidSebabas/InnOutPG/internal/shift"
	shifterrors "github.com/LiquidSebabas/InnOutPG/internal/shift/errors"
	shiftMock "github.com/LiquidSebabas/InnOutPG/internal/shift/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func TestHandler_GetAvailable(t *testing.T) {
	t.Run("missing date is rejected before the service", func(t *testing.T) {
		svc := shiftMock.NewMockService(gomock.NewController(t))
		r := gin.New()
		r.GET("/shifts/available", shift.NewHandler(svc).GetAvailable)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shifts/available", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Date is required")
	})

	t.Run("ok", func(t *testing.T) {
		svc := shiftMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetAvailable(gomock.Any(), shift.AvailableQuery{Date: "2025-03-01"}).
			Return([]shift.ShiftResponse{{ID: "s-1"}}, nil)

		r := gin.New()
		r.GET("/shifts/available", shift.NewHandler(svc).GetAvailable)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shifts/available?date=2025-03-01", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"s-1"`)
	})
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	svc := shiftMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().GetByID(gomock.Any(), "abc").Return(shift.ShiftResponse{}, shifterrors.ErrShiftNotFound)

	r := gin.New()
	r.GET("/shifts/:id", shift.NewHandler(svc).GetByID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shifts/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
