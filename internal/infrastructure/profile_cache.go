package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"taskboard/internal/config"
	"taskboard/internal/domain/entities"
)

// ProfileCache is an optional read-through cache for profile rows. When no
// Redis endpoint is configured, or the configured one is unreachable at
// startup, every method behaves as a miss and the store stays the source of
// truth. Profile rows are immutable, so nothing ever needs invalidating.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProfileCache(cfg *config.Config) *ProfileCache {
	cache := &ProfileCache{ttl: cfg.ProfileTTL}

	var client *redis.Client
	switch {
	case cfg.RedisURL != "":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("invalid REDIS_URL, caching disabled: %v", err)
			return cache
		}
		client = redis.NewClient(opt)
	case cfg.RedisAddr != "":
		client = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
	default:
		return cache
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable, caching disabled: %v", err)
		return cache
	}

	cache.client = client
	return cache
}

func (c *ProfileCache) Get(ctx context.Context, userId int64) (*entities.User, error) {
	if c.client == nil {
		return nil, redis.Nil
	}
	data, err := c.client.Get(ctx, profileKey(userId)).Result()
	if err != nil {
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *ProfileCache) Set(ctx context.Context, user *entities.User) error {
	if c.client == nil {
		return nil
	}
	// The password hash never enters the cache.
	stripped := *user
	stripped.Password = ""

	data, err := json.Marshal(&stripped)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKey(user.Id), data, c.ttl).Err()
}

func (c *ProfileCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func profileKey(userId int64) string {
	return fmt.Sprintf("profile:%d", userId)
}
