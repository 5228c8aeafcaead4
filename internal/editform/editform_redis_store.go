package editform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	editformerrors "github.com/HadirBos/hr-admin-gateway/internal/editform/errors"
	"github.com/redis/go-redis/v9"
)

const sessionTTL = 2 * time.Hour

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore menyimpan session sebagai JSON dengan TTL, plus index
// per user (set of session ids) untuk invalidasi.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func sessionKey(id string) string {
	return fmt.Sprintf("editform:session:%s", id)
}

func userIndexKey(userID string) string {
	return fmt.Sprintf("editform:user:%s", userID)
}

func (r *redisStore) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(s.ID), raw, sessionTTL)
	pipe.SAdd(ctx, userIndexKey(s.UserID), s.ID)
	pipe.Expire(ctx, userIndexKey(s.UserID), sessionTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, editformerrors.ErrSessionNotFound
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, editformerrors.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, userIndexKey(s.UserID), id)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisStore) DeleteByUser(ctx context.Context, userID string) (int, error) {
	ids, err := r.rdb.SMembers(ctx, userIndexKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userIndexKey(userID))

	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return 0, err
	}
	return len(ids), nil
}
