package document

import (
	"net/http"
	"strconv"

	documenterrors "github.com/LiquidSebabas/InnOutPG/internal/document/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("document.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("document request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	docs, err := h.service.GetByEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, docs, nil)
}

func (h *Handler) Recompute(c *gin.Context) {
	status, err := h.service.RecomputeStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, status, nil)
}

func (h *Handler) RecomputeAll(c *gin.Context) {
	result, err := h.service.RecomputeAll(c.Request.Context())
	if err != nil && result.Processed == 0 {
		h.writeServiceError(c, err)
		return
	}
	if err != nil {
		h.logger.Warn("partial document recompute", zap.Int("failed", result.Failed), zap.Error(err))
	}
	response.Success(c, http.StatusOK, result, nil)
}

// ListExpiring serves GET /documents/expiring?days=N.
func (h *Handler) ListExpiring(c *gin.Context) {
	days := DefaultExpiringDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeServiceError(c, documenterrors.ErrInvalidDays)
			return
		}
		days = n
	}

	rows, err := h.service.ListExpiring(c.Request.Context(), days)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewOffsetMeta(int64(len(rows)), len(rows), 0)
	response.Success(c, http.StatusOK, rows, &meta)
}
