package fileref

import (
	"net/http"

	filereferrors "github.com/HadirBos/hr-admin-gateway/internal/fileref/errors"
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
	l := zap.L().Named("fileref.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fileref.handler")
	}
	return &Handler{client: client, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("fileref request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, filereferrors.ErrEmptyFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, filereferrors.ErrEmptyFile)
		return
	}
	defer file.Close()

	token := c.GetString("token")
	fileURL, err := h.client.Upload(c.Request.Context(), fileHeader.Filename, file, token)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"fileUrl": fileURL}, nil)
}

func (h *Handler) Resolve(c *gin.Context) {
	ref := c.Query("ref")
	response.Success(c, http.StatusOK, gin.H{"url": h.client.Resolve(ref)}, nil)
}
