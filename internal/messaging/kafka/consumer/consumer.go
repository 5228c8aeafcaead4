package consumer

import (
	"context"
	"encoding/json"

	"github.com/HadirBos/hr-admin-gateway/internal/editform"
	"github.com/HadirBos/hr-admin-gateway/internal/events"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeUserUpdated membuang edit session yang baseline user-nya sudah
// berubah di upstream. Submit berikutnya pada session yang terhapus akan
// gagal dengan not-found, bukan diam-diam menimpa data yang lebih baru.
func ConsumeUserUpdated(
	ctx context.Context,
	reader *kafkago.Reader,
	editFormService editform.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.user_updated")
	log.Info("user updated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("user updated consumer stopped")
				return
			}
			log.Error("fetch user updated message failed", zap.Error(err))
			continue
		}

		var event events.UserUpdatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode user_updated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.UserID == "" {
			log.Warn("user_updated event without user_id, skipping")
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		deleted, err := editFormService.InvalidateUser(ctx, event.UserID)
		if err != nil {
			log.Error("invalidate edit sessions failed",
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit user updated message failed", zap.Error(err))
			continue
		}

		if deleted > 0 {
			log.Info("stale edit sessions removed",
				zap.String("user_id", event.UserID),
				zap.Int("count", deleted),
			)
		}
	}
}
