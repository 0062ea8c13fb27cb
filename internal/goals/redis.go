package goals

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/logger"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// maxWatchRetries bounds optimistic-lock retries when goals are appended
// concurrently.
const maxWatchRetries = 5

// RedisRepository keeps the goal array as a JSON string under the Slot key.
type RedisRepository struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

// NewRedisRepository stores goals in client under the Slot key.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client, key: Slot, now: time.Now}
}

// Insert appends goal using WATCH/MULTI so concurrent inserts never overwrite
// each other.
func (r *RedisRepository) Insert(ctx context.Context, goal *models.Goal) error {
	stamp(goal, r.now())

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, r.key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		goals, err := decodeSlot(data)
		if err != nil {
			return err
		}

		updated, err := json.Marshal(append(goals, *goal))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.key, updated, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err := r.client.Watch(ctx, txf, r.key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			logger.Get().Debugw("goal slot changed during insert, retrying", "attempt", attempt+1)
			continue
		}
		return apperrors.Storage(err)
	}
	return apperrors.Storage(errors.New("goal slot kept changing during insert"))
}

// ListAll reads every stored goal. A missing key means no goals yet.
func (r *RedisRepository) ListAll(ctx context.Context) ([]models.Goal, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.Goal{}, nil
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	goals, err := decodeSlot(data)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return goals, nil
}
