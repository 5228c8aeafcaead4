package editform

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"
	"github.com/HadirBos/hr-admin-gateway/internal/shared/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("editform.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("editform.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("edit session request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create membuat session lalu langsung menjalankan load baseline, meniru
// fetch-on-mount di form aslinya.
func (h *Handler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create session validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req.UserID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err = h.service.Load(c.Request.Context(), resp.ID, c.GetString("token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Load idempoten: session yang sudah pernah load tidak fetch ulang.
func (h *Handler) Load(c *gin.Context) {
	resp, err := h.service.Load(c.Request.Context(), c.Param("id"), c.GetString("token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SetField(c *gin.Context) {
	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http set field validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.SetField(c.Request.Context(), c.Param("id"), req.Field, req.Value)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	resp, err := h.service.Submit(c.Request.Context(), c.Param("id"), c.GetString("token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true}, nil)
}
