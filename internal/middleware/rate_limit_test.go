package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HadirBos/hr-admin-gateway/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newUserLimitedRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	r.GET("/ping", middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitByUser(t *testing.T) {
	t.Run("burst exceeded returns 429", func(t *testing.T) {
		r := newUserLimitedRouter("user-1")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("anonymous request skips user limiter", func(t *testing.T) {
		r := newUserLimitedRouter("")

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
