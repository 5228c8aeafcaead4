package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"
	"go.uber.org/zap"
)

//go:generate mockgen -source=submission_client.go -destination=mock/submission_client_mock.go -package=mock

// Client membaca dan membuat submission di store eksternal. Gateway
// tidak pernah memutasi status; approval workflow milik service lain.
type Client interface {
	List(ctx context.Context, token string) ([]Submission, error)
	Create(ctx context.Context, form FormData, token string) (Submission, error)
	Stats(ctx context.Context, token string) (Stats, error)
	Trend(ctx context.Context, token string) (Trend, error)
}

type client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) Client {
	l := zap.L().Named("submission.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("submission.client")
	}
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  l,
	}
}

func (c *client) List(ctx context.Context, token string) ([]Submission, error) {
	var out []Submission
	if err := c.get(ctx, "/submissions", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Create(ctx context.Context, form FormData, token string) (Submission, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return Submission{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submissions", bytes.NewReader(body))
	if err != nil {
		return Submission{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("create submission failed", zap.Error(err))
		return Submission{}, apperror.New(apperror.CodeServiceUnavailable, "submission service is unreachable", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return Submission{}, c.upstreamError(resp, "Failed to create submission")
	}

	var out Submission
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Error("decode created submission failed", zap.Error(err))
		return Submission{}, apperror.New(apperror.CodeServiceUnavailable, "submission service is unreachable", http.StatusBadGateway)
	}
	return out, nil
}

func (c *client) Stats(ctx context.Context, token string) (Stats, error) {
	var out Stats
	err := c.get(ctx, "/submissions/stats", token, &out)
	return out, err
}

func (c *client) Trend(ctx context.Context, token string) (Trend, error) {
	var out Trend
	err := c.get(ctx, "/submissions/trend", token, &out)
	return out, err
}

func (c *client) get(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("submission request failed", zap.String("path", path), zap.Error(err))
		return apperror.New(apperror.CodeServiceUnavailable, "submission service is unreachable", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.upstreamError(resp, fmt.Sprintf("Failed to fetch %s", path))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("decode submission response failed", zap.String("path", path), zap.Error(err))
		return apperror.New(apperror.CodeServiceUnavailable, "submission service is unreachable", http.StatusBadGateway)
	}
	return nil
}

// upstreamError mengangkat pesan `message` dari body error store
// eksternal supaya operator melihat alasan aslinya, bukan pesan generik.
func (c *client) upstreamError(resp *http.Response, fallback string) error {
	message := fallback
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if readErr == nil {
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
			message = payload.Message
		}
	}
	code := apperror.CodeInvalidInput
	if resp.StatusCode >= http.StatusInternalServerError {
		code = apperror.CodeInternalError
	}
	return apperror.New(code, message, resp.StatusCode)
}
