package user

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"
	usererrors "github.com/HadirBos/hr-admin-gateway/internal/user/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_client.go -destination=mock/user_client_mock.go -package=mock

// Client membungkus user service eksternal. Gateway tidak punya store
// sendiri; semua record user hidup di service ini.
type Client interface {
	GetByID(ctx context.Context, id, token string) (Data, error)
	Update(ctx context.Context, id string, patch Patch, token string) (Data, error)
}

type client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) Client {
	l := zap.L().Named("user.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.client")
	}
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  l,
	}
}

func (c *client) GetByID(ctx context.Context, id, token string) (Data, error) {
	if id == "" {
		return Data{}, usererrors.ErrInvalidUserID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%s", c.baseURL, id), nil)
	if err != nil {
		return Data{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("get user request failed", zap.String("user_id", id), zap.Error(err))
		return Data{}, usererrors.ErrUserServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Data{}, usererrors.ErrUserNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return Data{}, upstreamError(resp, "Failed to fetch user")
	}

	var data Data
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Error("decode user response failed", zap.String("user_id", id), zap.Error(err))
		return Data{}, usererrors.ErrUserServiceUnavailable
	}
	return data, nil
}

func (c *client) Update(ctx context.Context, id string, patch Patch, token string) (Data, error) {
	if id == "" {
		return Data{}, usererrors.ErrInvalidUserID
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return Data{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, fmt.Sprintf("%s/users/%s", c.baseURL, id), bytes.NewReader(body))
	if err != nil {
		return Data{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("update user request failed", zap.String("user_id", id), zap.Error(err))
		return Data{}, usererrors.ErrUserServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Data{}, usererrors.ErrUserNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return Data{}, upstreamError(resp, "Failed to update user")
	}

	var data Data
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Error("decode update response failed", zap.String("user_id", id), zap.Error(err))
		return Data{}, usererrors.ErrUserServiceUnavailable
	}

	c.logger.Info("user updated", zap.String("user_id", id), zap.Int("fields", len(patch)))
	return data, nil
}

// upstreamError mengangkat pesan error dari body user service bila ada,
// kalau tidak memakai fallback generik.
func upstreamError(resp *http.Response, fallback string) error {
	message := fallback

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
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
