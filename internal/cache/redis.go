package cache

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

func archiveTextKey(bookmarkID string) string {
	return "archive:text:" + bookmarkID
}

var _ ArchiveTextCache = (*RedisArchiveCache)(nil)

type RedisArchiveCache struct {
	client *redis.Client
}

func NewRedisArchiveCache(addr string) *RedisArchiveCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &RedisArchiveCache{client: client}
}

func (r *RedisArchiveCache) GetText(ctx context.Context, bookmarkID string) (string, bool, error) {
	res := r.client.Get(ctx, archiveTextKey(bookmarkID))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return "", false, nil
		}
		return "", false, res.Err()
	}

	return res.Val(), true, nil
}

func (r *RedisArchiveCache) SetText(ctx context.Context, bookmarkID string, text string, ttl time.Duration) error {
	return r.client.Set(ctx, archiveTextKey(bookmarkID), text, ttl).Err()
}

func (r *RedisArchiveCache) DeleteText(ctx context.Context, bookmarkID string) error {
	return r.client.Del(ctx, archiveTextKey(bookmarkID)).Err()
}
