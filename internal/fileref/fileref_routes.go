package fileref

import (
	"github.com/HadirBos/hr-admin-gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	files := r.Group("/files")
	files.Use(middleware.AuthMiddleware(jwtSecret))
	{
		files.POST("/upload", middleware.RateLimitByUser(0.5, 2), handler.Upload)
		files.GET("/resolve", middleware.RateLimitByUser(5, 20), handler.Resolve)
	}
}
