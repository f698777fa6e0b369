// Package cache decorates the user directory with a read-through cache. The
// directory backs both recipient aggregation and caller resolution, so the
// same listing gets requested on nearly every write path.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"fleetdesk/config"
	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/repository"
)

const directoryCacheKey = "fleetdesk:users:directory"

// NewRedisClient connects to Redis when a directory cache URL is configured.
// A nil client is a valid result and means the in-process cache is used.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.Directory.RedisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.Directory.RedisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

type cachedUserRepository struct {
	inner  repository.UserRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	local    []entity.UserRef
	localExp time.Time
}

// NewCachedUserRepository wraps the directory repository with a TTL cache.
// With a Redis client the cache is shared across instances; without one it
// falls back to a per-process copy.
func NewCachedUserRepository(
	inner repository.UserRepository,
	client *redis.Client,
	cfg *config.Config,
	logger *slog.Logger,
) repository.UserRepository {
	return &cachedUserRepository{
		inner:  inner,
		client: client,
		ttl:    cfg.Directory.CacheTTL,
		logger: logger,
	}
}

func (r *cachedUserRepository) ListDirectory(ctx context.Context) ([]entity.UserRef, error) {
	if users, ok := r.cached(ctx); ok {
		return users, nil
	}

	users, err := r.inner.ListDirectory(ctx)
	if err != nil {
		return nil, err
	}

	r.store(ctx, users)

	return users, nil
}

// FindByExternalID resolves against the cached directory first and only
// falls back to a point lookup when the entry is absent, so stale caches
// cannot hide newly created users.
func (r *cachedUserRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.UserRef, error) {
	if users, ok := r.cached(ctx); ok {
		for i := range users {
			if users[i].ExternalID == externalID {
				user := users[i]

				return &user, nil
			}
		}
	}

	return r.inner.FindByExternalID(ctx, externalID)
}

func (r *cachedUserRepository) cached(ctx context.Context) ([]entity.UserRef, bool) {
	if r.client != nil {
		raw, err := r.client.Get(ctx, directoryCacheKey).Result()
		if err != nil {
			return nil, false
		}

		var users []entity.UserRef
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			r.logger.WarnContext(ctx, "discarding malformed directory cache entry", slog.Any("error", err))

			return nil, false
		}

		return users, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.local == nil || time.Now().After(r.localExp) {
		return nil, false
	}

	return r.local, true
}

func (r *cachedUserRepository) store(ctx context.Context, users []entity.UserRef) {
	if r.client != nil {
		raw, err := json.Marshal(users)
		if err != nil {
			return
		}

		if err := r.client.Set(ctx, directoryCacheKey, raw, r.ttl).Err(); err != nil {
			r.logger.WarnContext(ctx, "failed to cache user directory", slog.Any("error", err))
		}

		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.local = users
	r.localExp = time.Now().Add(r.ttl)
}
