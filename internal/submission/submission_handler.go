package submission

import (
	"net/http"

	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"
	"github.com/HadirBos/hr-admin-gateway/internal/shared/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	client Client
	logger *zap.Logger
}

func NewHandler(client Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("submission.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("submission.handler")
	}
	return &Handler{client: client, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("submission request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create meneruskan form pengajuan ke store eksternal apa adanya;
// validasi isi form di luar tipe dasarnya tetap milik store.
func (h *Handler) Create(c *gin.Context) {
	var form FormData
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("http create submission validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	sub, err := h.client.Create(c.Request.Context(), form, c.GetString("token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sub, nil)
}

func (h *Handler) List(c *gin.Context) {
	subs, err := h.client.List(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, subs, nil)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.client.Stats(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, nil)
}

func (h *Handler) Trend(c *gin.Context) {
	trend, err := h.client.Trend(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, trend, nil)
}
