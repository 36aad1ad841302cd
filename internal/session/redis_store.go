package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/videogames-portal/internal/config"
	"github.com/spec-kit/videogames-portal/internal/domain"
)

// RedisStore backs the session cell with Redis for server deployments
// where the session must survive a process restart on another host.
// The in-memory copy is authoritative for reads; Redis is the
// durability layer, written through on every mutation.
type RedisStore struct {
	mu       sync.Mutex
	client   *redis.Client
	logger   *zap.Logger
	token    domain.Token
	present  bool
	notifier *notifier
}

// NewRedisStore connects to Redis using the provided configuration and
// loads any persisted session.
func NewRedisStore(cfg config.RedisConfig, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	rs := &RedisStore{
		client:   client,
		logger:   logger,
		notifier: newNotifier(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := client.Get(ctx, TokenKey).Result()
	switch {
	case err == redis.Nil:
		logger.Info("connected to redis, no stored session")
	case err != nil:
		logger.Warn("unable to reach redis", zap.Error(err))
	case val != "":
		rs.token = domain.Token(val)
		rs.present = true
		logger.Info("connected to redis, session restored")
	}

	return rs
}

// Get returns the held token, if any.
func (r *RedisStore) Get() (domain.Token, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token, r.present
}

// Set replaces the held value, writes it through to Redis, and notifies
// subscribers.
func (r *RedisStore) Set(token domain.Token) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
	r.present = true
	if err := r.client.Set(context.Background(), TokenKey, string(token), 0).Err(); err != nil {
		r.logger.Warn("session write-through failed", zap.Error(err))
	}
	r.notifier.publish(Update{Token: token, Present: true})
}

// Clear empties the cell, deletes the Redis key, and notifies
// subscribers.
func (r *RedisStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = ""
	r.present = false
	if err := r.client.Del(context.Background(), TokenKey).Err(); err != nil {
		r.logger.Warn("session delete failed", zap.Error(err))
	}
	r.notifier.publish(Update{})
}

// Observe subscribes to the cell's value stream.
func (r *RedisStore) Observe() (<-chan Update, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notifier.subscribe(Update{Token: r.token, Present: r.present})
}

// Ping verifies Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *RedisStore) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}
