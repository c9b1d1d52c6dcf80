package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"farmconnect/internal/config"
	"farmconnect/internal/repository"

	"github.com/redis/go-redis/v9"
)

const pendingTTL = 30 * time.Second

// Redis caches pending-match listings. When the server is unreachable
// the cache degrades to a no-op so match listing keeps working off the
// database.
type Redis struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("cache: redis unavailable, bypassing | error=%v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) unavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("cache: redis unavailable, bypassing | error=%v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.unavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func pendingKey(limit int) string {
	return "matches:pending:" + strconv.Itoa(limit)
}

func (r *Redis) GetPending(ctx context.Context, limit int) ([]repository.PendingMatchRow, bool) {
	if r.unavailable() {
		return nil, false
	}

	b, err := r.client.Get(ctx, pendingKey(limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.warnOnce(err)
		}
		return nil, false
	}

	var rows []repository.PendingMatchRow
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (r *Redis) SetPending(ctx context.Context, limit int, rows []repository.PendingMatchRow) {
	if r.unavailable() {
		return
	}

	b, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, pendingKey(limit), b, pendingTTL).Err(); err != nil {
		r.warnOnce(err)
	}
}

func (r *Redis) InvalidatePending(ctx context.Context) {
	if r.unavailable() {
		return
	}

	iter := r.client.Scan(ctx, 0, "matches:pending:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.warnOnce(err)
			return
		}
	}
	if err := iter.Err(); err != nil {
		r.warnOnce(err)
	}
}

func (r *Redis) Close() error {
	if r.unavailable() {
		return nil
	}
	return r.client.Close()
}
