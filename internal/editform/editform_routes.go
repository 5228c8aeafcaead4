package editform

import (
	"github.com/HadirBos/hr-admin-gateway/internal/middleware"
	"github.com/HadirBos/hr-admin-gateway/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	sessions := r.Group("/edit-sessions")
	sessions.Use(middleware.AuthMiddleware(jwtSecret))
	sessions.Use(middleware.RoleMiddleware(user.RoleAdmin))
	{
		sessions.POST("", middleware.RateLimitByUser(2, 5), handler.Create)
		sessions.GET("/:id", middleware.RateLimitByUser(5, 20), handler.Get)
		sessions.POST("/:id/load", middleware.RateLimitByUser(2, 5), handler.Load)
		// SetField longgar karena dipanggil per keystroke-commit di form
		sessions.PATCH("/:id/fields", middleware.RateLimitByUser(5, 20), handler.SetField)
		if redisClient != nil {
			sessions.POST("/:id/submit",
				middleware.RateLimitByUser(0.5, 2),
				middleware.Idempotency(redisClient),
				handler.Submit,
			)
		} else {
			sessions.POST("/:id/submit", middleware.RateLimitByUser(0.5, 2), handler.Submit)
		}
		sessions.DELETE("/:id", middleware.RateLimitByUser(1, 5), handler.Cancel)
	}
}
