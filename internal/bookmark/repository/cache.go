package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/redis/go-redis/v9"
)

// CachedRepo is a read-through Redis cache in front of another repository.
// Only GetByID is cached; bookmarks are stored as JSON under
// "<prefix><id>" with a TTL, and the entry is dropped whenever the row is
// patched or deleted. A broken cache degrades to the inner repository
// rather than failing the request.
type CachedRepo struct {
	inner  Repository
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCachedRepo(inner Repository, client *redis.Client, ttl time.Duration) *CachedRepo {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedRepo{inner: inner, client: client, prefix: "bookmark:", ttl: ttl}
}

func (c *CachedRepo) key(id string) string {
	return c.prefix + id
}

func (c *CachedRepo) GetAll(ctx context.Context) ([]bookmark.Bookmark, error) {
	return c.inner.GetAll(ctx)
}

func (c *CachedRepo) GetByID(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == nil {
		var b bookmark.Bookmark
		if err := json.Unmarshal(raw, &b); err == nil {
			return &b, nil
		}
	}
	b, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if buf, err := json.Marshal(b); err == nil {
		_ = c.client.Set(ctx, c.key(id), buf, c.ttl).Err()
	}
	return b, nil
}

func (c *CachedRepo) Insert(ctx context.Context, b *bookmark.Bookmark) (string, error) {
	return c.inner.Insert(ctx, b)
}

func (c *CachedRepo) PatchByID(ctx context.Context, id string, next bookmark.Bookmark) error {
	if err := c.inner.PatchByID(ctx, id, next); err != nil {
		return err
	}
	_ = c.client.Del(ctx, c.key(id)).Err()
	return nil
}

func (c *CachedRepo) DeleteByID(ctx context.Context, id string) error {
	if err := c.inner.DeleteByID(ctx, id); err != nil {
		return err
	}
	_ = c.client.Del(ctx, c.key(id)).Err()
	return nil
}
