package editform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HadirBos/hr-admin-gateway/internal/editform"
	editformerrors "github.com/HadirBos/hr-admin-gateway/internal/editform/errors"
	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEditFormService struct {
	createFn     func(ctx context.Context, userID string) (editform.SessionResponse, error)
	loadFn       func(ctx context.Context, sessionID, token string) (editform.SessionResponse, error)
	getFn        func(ctx context.Context, sessionID string) (editform.SessionResponse, error)
	setFieldFn   func(ctx context.Context, sessionID, field string, value any) (editform.SessionResponse, error)
	submitFn     func(ctx context.Context, sessionID, token string) (editform.SubmitResponse, error)
	cancelFn     func(ctx context.Context, sessionID string) error
	invalidateFn func(ctx context.Context, userID string) (int, error)
}

func (f *fakeEditFormService) Create(ctx context.Context, userID string) (editform.SessionResponse, error) {
	return f.createFn(ctx, userID)
}
func (f *fakeEditFormService) Load(ctx context.Context, sessionID, token string) (editform.SessionResponse, error) {
	return f.loadFn(ctx, sessionID, token)
}
func (f *fakeEditFormService) Get(ctx context.Context, sessionID string) (editform.SessionResponse, error) {
	return f.getFn(ctx, sessionID)
}
func (f *fakeEditFormService) SetField(ctx context.Context, sessionID, field string, value any) (editform.SessionResponse, error) {
	return f.setFieldFn(ctx, sessionID, field, value)
}
func (f *fakeEditFormService) Submit(ctx context.Context, sessionID, token string) (editform.SubmitResponse, error) {
	return f.submitFn(ctx, sessionID, token)
}
func (f *fakeEditFormService) Cancel(ctx context.Context, sessionID string) error {
	return f.cancelFn(ctx, sessionID)
}
func (f *fakeEditFormService) InvalidateUser(ctx context.Context, userID string) (int, error) {
	return f.invalidateFn(ctx, userID)
}

func TestEditFormHandler_Create(t *testing.T) {
	// Register the json tag-name func before any binding occurs: gin's shared
	// validator caches struct field names on first validation, so Init must
	// run before the first subtest binds CreateSessionRequest.
	apperror.Init()

	t.Run("creates then loads with caller token", func(t *testing.T) {
		svc := &fakeEditFormService{
			createFn: func(ctx context.Context, userID string) (editform.SessionResponse, error) {
				assert.Equal(t, "user-1", userID)
				return editform.SessionResponse{ID: "sess-1", UserID: userID, State: string(editform.StateUninitialized)}, nil
			},
			loadFn: func(ctx context.Context, sessionID, token string) (editform.SessionResponse, error) {
				assert.Equal(t, "sess-1", sessionID)
				assert.Equal(t, "tok-abc", token)
				return editform.SessionResponse{
					ID:     sessionID,
					UserID: "user-1",
					State:  string(editform.StateReady),
					Fields: map[string]any{"name": "A"},
				}, nil
			},
		}

		h := editform.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/edit-sessions", strings.NewReader(`{"user_id":"user-1"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("token", "tok-abc")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got editform.SessionResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "sess-1", got.ID)
		assert.Equal(t, string(editform.StateReady), got.State)
		assert.Equal(t, "A", got.Fields["name"])
	})

	t.Run("negative validation error", func(t *testing.T) {
		apperror.Init()
		h := editform.NewHandler(&fakeEditFormService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/edit-sessions", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Equal(t, "User Id is required", env.Error.Message)
	})
}

func TestEditFormHandler_SetField(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEditFormService{
			setFieldFn: func(ctx context.Context, sessionID, field string, value any) (editform.SessionResponse, error) {
				assert.Equal(t, "sess-1", sessionID)
				assert.Equal(t, "name", field)
				assert.Equal(t, "B", value)
				return editform.SessionResponse{ID: sessionID, State: string(editform.StateReady), Fields: map[string]any{"name": "B"}}, nil
			},
		}

		h := editform.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/edit-sessions/sess-1/fields", strings.NewReader(`{"field":"name","value":"B"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

		h.SetField(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("unknown field maps to 400", func(t *testing.T) {
		svc := &fakeEditFormService{
			setFieldFn: func(ctx context.Context, sessionID, field string, value any) (editform.SessionResponse, error) {
				return editform.SessionResponse{}, editformerrors.ErrUnknownField
			},
		}

		h := editform.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/edit-sessions/sess-1/fields", strings.NewReader(`{"field":"isAdmin","value":true}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

		h.SetField(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestEditFormHandler_Submit(t *testing.T) {
	t.Run("success returns patch", func(t *testing.T) {
		svc := &fakeEditFormService{
			submitFn: func(ctx context.Context, sessionID, token string) (editform.SubmitResponse, error) {
				assert.Equal(t, "tok-abc", token)
				return editform.SubmitResponse{Patch: map[string]any{"name": "B"}, Updated: true}, nil
			},
		}

		h := editform.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/edit-sessions/sess-1/submit", nil)
		c.Params = gin.Params{{Key: "id", Value: "sess-1"}}
		c.Set("token", "tok-abc")

		h.Submit(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got editform.SubmitResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.True(t, got.Updated)
		assert.Equal(t, map[string]any{"name": "B"}, got.Patch)
	})

	t.Run("upstream message surfaced on failure", func(t *testing.T) {
		svc := &fakeEditFormService{
			submitFn: func(ctx context.Context, sessionID, token string) (editform.SubmitResponse, error) {
				return editform.SubmitResponse{}, editformerrors.ErrSubmitInFlight
			},
		}

		h := editform.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/edit-sessions/sess-1/submit", nil)
		c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

		h.Submit(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}
