package employee_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LiquidSebabas/InnOutPG/internal/employee"
	employeeerrors "github.com/LiquidSebabas/InnOutPG/internal/employee/errors"
	employeeMock "github.com/LiquidSebabas/InnOutPG/internal/employee/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func newRouter(svc employee.Service) *gin.Engine {
	h := employee.NewHandler(svc)
	r := gin.New()
	r.GET("/employees", h.GetAll)
	r.POST("/employees", h.Create)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	r.POST("/employees/email-exists", h.CheckEmail)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Create(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		w := doJSON(t, newRouter(svc), http.MethodPost, "/employees", map[string]any{"full_name": "Ana"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email is required")
	})

	t.Run("bad document date", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		w := doJSON(t, newRouter(svc), http.MethodPost, "/employees", map[string]any{
			"full_name": "Ana",
			"email":     "ana@example.com",
			"papeleria": map[string]any{"lungs_expires_at": "2025-13-01"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_FORMAT")
	})

	t.Run("created", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				require.NotNil(t, req.Papeleria)
				assert.True(t, *req.Papeleria.PoliceRecord)
				return employee.EmployeeResponse{ID: "e-1", FullName: req.FullName}, nil
			})

		w := doJSON(t, newRouter(svc), http.MethodPost, "/employees", map[string]any{
			"full_name": "Ana",
			"email":     "ana@example.com",
			"papeleria": map[string]any{"police_record": true},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"full_name":"Ana"`)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists)

		w := doJSON(t, newRouter(svc), http.MethodPost, "/employees", map[string]any{
			"full_name": "Ana",
			"email":     "ana@example.com",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestHandler_GetAll(t *testing.T) {
	svc := employeeMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().GetAll(gomock.Any(), employee.ListQuery{Search: "ana", Page: 2, PageSize: 5}).
		Return([]employee.EmployeeListItem{{ID: "e-1"}}, int64(11), nil)

	w := doJSON(t, newRouter(svc), http.MethodGet, "/employees?search=ana&page=2&page_size=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Meta struct {
			Total   int64 `json:"total"`
			Page    int   `json:"page"`
			HasMore bool  `json:"hasMore"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
	assert.True(t, body.Meta.HasMore)
}

func TestHandler_Update_NotFound(t *testing.T) {
	svc := employeeMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().Update(gomock.Any(), "e-404", gomock.Any()).Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

	w := doJSON(t, newRouter(svc), http.MethodPut, "/employees/e-404", map[string]any{
		"full_name": "Ana",
		"email":     "ana@example.com",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Delete(t *testing.T) {
	svc := employeeMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)

	w := doJSON(t, newRouter(svc), http.MethodDelete, "/employees/e-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}

func TestHandler_CheckEmail(t *testing.T) {
	svc := employeeMock.NewMockService(gomock.NewController(t))
	exclude := "b7e6d2c0-3f0a-4b8e-9f61-1d2c3b4a5e6f"
	svc.EXPECT().EmailExists(gomock.Any(), "ana@example.com", &exclude).Return(true, nil)

	w := doJSON(t, newRouter(svc), http.MethodPost, "/employees/email-exists?exclude_id="+exclude,
		map[string]any{"email": "ana@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exists":true`)
}
