package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"wellnesstal-backend/internal/render"

	redis "github.com/redis/go-redis/v9"
)

const pageKeyPrefix = "page:render:"

func pageKey(slug string) string {
	return pageKeyPrefix + slug
}

var _ PageCache = (*RedisPageCache)(nil)

type RedisPageCache struct {
	client *redis.Client
}

func NewRedisPageCache(addr, password string) *RedisPageCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &RedisPageCache{client: client}
}

func (r *RedisPageCache) GetPage(ctx context.Context, slug string) (*render.Document, error) {
	res := r.client.Get(ctx, pageKey(slug))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return nil, nil
		}
		return nil, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return nil, err
	}

	doc := &render.Document{}
	if err := json.Unmarshal(buf, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *RedisPageCache) SetPage(ctx context.Context, slug string, doc *render.Document, ttl time.Duration) error {
	marshal, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, pageKey(slug), marshal, ttl).Err()
}

func (r *RedisPageCache) InvalidateAll(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, pageKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
