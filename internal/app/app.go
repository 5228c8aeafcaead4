package app

import (
	"log"

	"github.com/HadirBos/hr-admin-gateway/internal/config"
	"github.com/HadirBos/hr-admin-gateway/internal/editform"
	"github.com/HadirBos/hr-admin-gateway/internal/shared/connection"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func BuildApp(router *gin.Engine) error {
	cfg := config.Load()

	// 1. Setup Infrastructure
	var sessionStore editform.Store
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		log.Println("✅ Redis connection established")
		redisClient = rdb
		sessionStore = editform.NewRedisStore(redisClient)
	} else {
		// Tanpa redis session hanya hidup di satu instance; cukup untuk dev.
		log.Println("⚠️ REDIS_ADDR not set, using in-memory session store")
		sessionStore = editform.NewMemoryStore()
	}

	// 2. Register Modules & Routes
	registerModules(router, cfg, sessionStore, redisClient)

	return nil
}
