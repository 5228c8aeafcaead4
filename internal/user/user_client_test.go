package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HadirBos/hr-admin-gateway/internal/user"
	usererrors "github.com/HadirBos/hr-admin-gateway/internal/user/errors"

	"github.com/stretchr/testify/assert"
)

func TestClient_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/users/u1", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"_id":"u1","name":"Budi","email":"budi@mail.com","role":"employee","baseSalary":7500000}`))
		}))
		defer srv.Close()

		client := user.NewClient(srv.URL)
		data, err := client.GetByID(ctx, "u1", "tok")

		assert.NoError(t, err)
		assert.Equal(t, "Budi", data.Name)
		assert.Equal(t, float64(7500000), data.BaseSalary)
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := user.NewClient(srv.URL)
		_, err := client.GetByID(ctx, "u404", "tok")
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("empty id rejected without network call", func(t *testing.T) {
		client := user.NewClient("http://127.0.0.1:1")
		_, err := client.GetByID(ctx, "", "tok")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("unreachable service", func(t *testing.T) {
		client := user.NewClient("http://127.0.0.1:1")
		_, err := client.GetByID(ctx, "u1", "tok")
		assert.ErrorIs(t, err, usererrors.ErrUserServiceUnavailable)
	})
}

func TestClient_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("sends only patched fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/users/u1", r.URL.Path)

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"name": "B"}, body)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"_id":"u1","name":"B","email":"budi@mail.com","role":"employee"}`))
		}))
		defer srv.Close()

		client := user.NewClient(srv.URL)
		data, err := client.Update(ctx, "u1", user.Patch{"name": "B"}, "tok")

		assert.NoError(t, err)
		assert.Equal(t, "B", data.Name)
	})

	t.Run("empty patch still issued", func(t *testing.T) {
		var received map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"_id":"u1","name":"A","email":"a@mail.com","role":"employee"}`))
		}))
		defer srv.Close()

		client := user.NewClient(srv.URL)
		_, err := client.Update(ctx, "u1", user.Patch{}, "tok")

		assert.NoError(t, err)
		assert.Empty(t, received)
	})

	t.Run("validation failure surfaces upstream message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Email already in use"}`))
		}))
		defer srv.Close()

		client := user.NewClient(srv.URL)
		_, err := client.Update(ctx, "u1", user.Patch{"email": "taken@mail.com"}, "tok")

		assert.EqualError(t, err, "Email already in use")
	})
}
