package submission_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HadirBos/hr-admin-gateway/internal/submission"

	"github.com/stretchr/testify/assert"
)

func TestClient_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/submissions/stats", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"leave":{"total":3,"pending":1,"approved":2,"rejected":0,"percentages":{"pending":33.3,"approved":66.7,"rejected":0}}}`))
		}))
		defer srv.Close()

		client := submission.NewClient(srv.URL)
		stats, err := client.Stats(ctx, "tok")

		assert.NoError(t, err)
		assert.Equal(t, 3, stats.Leave.Total)
	})

	t.Run("upstream error message surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"Admin only"}`))
		}))
		defer srv.Close()

		client := submission.NewClient(srv.URL)
		_, err := client.Stats(ctx, "tok")
		assert.EqualError(t, err, "Admin only")
	})
}

func TestClient_List(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submissions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"sub-1","employeeId":"u1","type":"leave","reason":"Cuti","status":"pending","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"},
			{"_id":"sub-2","employeeId":{"_id":"u2","name":"Sari","email":"sari@mail.com","role":"employee"},"type":"resignation","reason":"Pindah","status":"approved","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-02T00:00:00Z"}
		]`))
	}))
	defer srv.Close()

	client := submission.NewClient(srv.URL)
	subs, err := client.List(ctx, "tok")

	assert.NoError(t, err)
	assert.Len(t, subs, 2)
	assert.False(t, subs[0].EmployeeID.Expanded())
	assert.True(t, subs[1].EmployeeID.Expanded())
	assert.Equal(t, "Sari", subs[1].EmployeeID.User.Name)
}

func TestClient_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("posts form and decodes created record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/submissions", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			var form submission.FormData
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&form))
			assert.Equal(t, "leave", form.Type)
			assert.Equal(t, "Cuti tahunan", form.Reason)
			assert.Equal(t, "https://cdn.hadirbos.io/doc.pdf", form.FileURL)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"_id":"sub-9","employeeId":"u1","type":"leave","reason":"Cuti tahunan","status":"pending","createdAt":"2026-02-01T00:00:00Z","updatedAt":"2026-02-01T00:00:00Z"}`))
		}))
		defer srv.Close()

		client := submission.NewClient(srv.URL)
		sub, err := client.Create(ctx, submission.FormData{
			Type:      "leave",
			Reason:    "Cuti tahunan",
			StartDate: "2026-02-10",
			EndDate:   "2026-02-12",
			FileURL:   "https://cdn.hadirbos.io/doc.pdf",
		}, "tok")

		assert.NoError(t, err)
		assert.Equal(t, "sub-9", sub.ID)
		assert.Equal(t, submission.StatusPending, sub.Status)
	})

	t.Run("upstream rejection message surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Leave dates overlap an approved request"}`))
		}))
		defer srv.Close()

		client := submission.NewClient(srv.URL)
		_, err := client.Create(ctx, submission.FormData{Type: "leave", Reason: "Cuti"}, "tok")
		assert.EqualError(t, err, "Leave dates overlap an approved request")
	})
}
