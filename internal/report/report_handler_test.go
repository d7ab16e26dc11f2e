package report_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LiquidSebabas/InnOutPG/internal/report"
	reporterrors "github.com/LiquidSebabas/InnOutPG/internal/report/errors"
	reportMock "github.com/LiquidSebabas/InnOutPG/internal/report/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func newRouter(svc report.Service) *gin.Engine {
	h := report.NewHandler(svc)
	r := gin.New()
	r.GET("/reports/biweekly", h.Biweekly)
	r.GET("/reports/biweekly.pdf", h.BiweeklyPDF)
	r.GET("/reports/employees/:id/stats", h.EmployeeStats)
	r.GET("/reports/employees-by-area", h.EmployeesByArea)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_Biweekly(t *testing.T) {
	t.Run("bad date never reaches the service", func(t *testing.T) {
		svc := reportMock.NewMockService(gomock.NewController(t))
		w := get(newRouter(svc), "/reports/biweekly?start_date=2025-3-1&end_date=2025-03-15")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_FORMAT")
	})

	t.Run("binds embedded range and filters", func(t *testing.T) {
		svc := reportMock.NewMockService(gomock.NewController(t))
		company := "6f1c2f44-8f0e-4a57-9d5c-2d7a1f9e0b11"
		svc.EXPECT().Biweekly(gomock.Any(), report.BiweeklyQuery{
			RangeQuery: report.RangeQuery{StartDate: "2025-03-01", EndDate: "2025-03-15"},
			CompanyID:  company,
		}).Return(report.BiweeklyResponse{EmployeeCount: 4}, nil)

		w := get(newRouter(svc), "/reports/biweekly?start_date=2025-03-01&end_date=2025-03-15&company_id="+company)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_count":4`)
	})
}

func TestHandler_BiweeklyPDF(t *testing.T) {
	svc := reportMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().BiweeklyPDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.4"), "biweekly.pdf", nil)

	w := get(newRouter(svc), "/reports/biweekly.pdf")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="biweekly.pdf"`)
}

func TestHandler_EmployeeStats_NotFound(t *testing.T) {
	svc := reportMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().EmployeeStats(gomock.Any(), "e-1", report.RangeQuery{}).
		Return(report.EmployeeStatsResponse{}, reporterrors.ErrEmployeeNotFound)

	w := get(newRouter(svc), "/reports/employees/e-1/stats")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_EmployeesByArea(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		svc := reportMock.NewMockService(gomock.NewController(t))
		area := "0d7e4b8a-2c1f-4f3e-8a6b-5c9d0e1f2a3b"
		svc.EXPECT().EmployeesByArea(gomock.Any(), report.RosterQuery{AreaID: area}).
			Return(report.EmployeesByAreaResponse{Employees: []report.RosterEmployee{}, TotalEmployees: 0}, nil)

		w := get(newRouter(svc), "/reports/employees-by-area?area_id="+area)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_employees":0`)
	})

	t.Run("malformed area id is rejected", func(t *testing.T) {
		svc := reportMock.NewMockService(gomock.NewController(t))
		w := get(newRouter(svc), "/reports/employees-by-area?area_id=abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
