package app

import (
	"github.com/HadirBos/hr-admin-gateway/internal/config"
	"github.com/HadirBos/hr-admin-gateway/internal/editform"
	"github.com/HadirBos/hr-admin-gateway/internal/fileref"
	"github.com/HadirBos/hr-admin-gateway/internal/middleware"
	"github.com/HadirBos/hr-admin-gateway/internal/submission"
	"github.com/HadirBos/hr-admin-gateway/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	sessionStore editform.Store,
	redisClient *redis.Client,
) {
	// --- Clients (collaborator services eksternal) ---
	userClient := user.NewClient(cfg.APIBaseURL)
	fileClient := fileref.NewClient(cfg.APIBaseURL)
	submissionClient := submission.NewClient(cfg.APIBaseURL)

	// --- Services ---
	editFormService := editform.NewService(sessionStore, userClient)

	// --- Handlers ---
	editFormHandler := editform.NewHandlerWithRedis(editFormService, redisClient)
	fileHandler := fileref.NewHandler(fileClient)
	submissionHandler := submission.NewHandler(submissionClient)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		editform.RegisterRoutes(api, editFormHandler, cfg.JWTSecret, redisClient)
		fileref.RegisterRoutes(api, fileHandler, cfg.JWTSecret)
		submission.RegisterRoutes(api, submissionHandler, cfg.JWTSecret)
	}
}
