package fileref

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	filereferrors "github.com/HadirBos/hr-admin-gateway/internal/fileref/errors"
	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"
	"go.uber.org/zap"
)

//go:generate mockgen -source=fileref_client.go -destination=mock/fileref_client_mock.go -package=mock

// Client punya dua operasi yang tidak saling tergantung: upload file baru
// ke file service dan resolve reference tersimpan menjadi URL tampil.
type Client interface {
	Upload(ctx context.Context, filename string, content io.Reader, token string) (string, error)
	Resolve(ref string) string
}

type client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) Client {
	l := zap.L().Named("fileref.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fileref.client")
	}
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
		logger:  l,
	}
}

// Upload mengirim seluruh file dalam satu request multipart. Tidak ada
// chunking, resume, maupun retry; kegagalan dikembalikan apa adanya ke
// pemanggil dengan pesan dari server bila tersedia.
func (c *client) Upload(ctx context.Context, filename string, content io.Reader, token string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("upload request failed", zap.String("filename", filename), zap.Error(err))
		return "", filereferrors.ErrUploadFailed
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", filereferrors.ErrUploadFailed
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := "Failed to upload file"
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
			message = payload.Message
		}
		c.logger.Warn("upload rejected",
			zap.String("filename", filename),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
		)
		return "", apperror.New(apperror.CodeInvalidInput, message, resp.StatusCode)
	}

	var result struct {
		FileURL string `json:"fileUrl"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", filereferrors.ErrUploadFailed
	}

	c.logger.Info("file uploaded", zap.String("filename", filename), zap.String("file_url", result.FileURL))
	return result.FileURL, nil
}

// Resolve bersifat murni: string kosong tetap kosong, URL penuh
// dikembalikan apa adanya, path relatif diberi prefix base URL.
func (c *client) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return c.baseURL + ref
}
