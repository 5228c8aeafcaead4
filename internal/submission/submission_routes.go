package submission

import (
	"github.com/HadirBos/hr-admin-gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	subs := r.Group("/submissions")
	subs.Use(middleware.AuthMiddleware(jwtSecret))
	{
		subs.GET("", middleware.RateLimitByUser(3, 10), handler.List)
		subs.POST("", middleware.RateLimitByUser(0.5, 2), handler.Create)
		subs.GET("/stats", middleware.RateLimitByUser(3, 10), handler.Stats)
		subs.GET("/trend", middleware.RateLimitByUser(3, 10), handler.Trend)
	}
}
