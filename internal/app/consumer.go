package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HadirBos/hr-admin-gateway/internal/config"
	"github.com/HadirBos/hr-admin-gateway/internal/editform"
	"github.com/HadirBos/hr-admin-gateway/internal/events"
	"github.com/HadirBos/hr-admin-gateway/internal/messaging/kafka/consumer"
	"github.com/HadirBos/hr-admin-gateway/internal/shared/connection"
	"github.com/HadirBos/hr-admin-gateway/internal/user"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")
	cfg := config.Load()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	reader, err := connection.ConnectKafkaReaderWithRetry(
		cfg.KafkaBroker,
		events.UserUpdatedTopic,
		"hr-admin-gateway.editform-invalidator",
		5,
	)
	if err != nil {
		return err
	}
	defer reader.Close()

	sessionStore := editform.NewRedisStore(redisClient)
	editFormService := editform.NewService(sessionStore, user.NewClient(cfg.APIBaseURL))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeUserUpdated(ctx, reader, editFormService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
