package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	dom "github.com/srinjoywork/Module-5/internal/domain"
)

const keyPagePrefix = "tasks:page:"

// TaskCache caches task-list pages in Redis, keyed per account so one
// principal's cache never serves another's tasks.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

// Page is one cached list page with its total count.
type Page struct {
	Tasks      []dom.Task `json:"tasks"`
	TotalItems int        `json:"totalItems"`
}

// GetPage returns the cached page or nil if miss.
func (c *TaskCache) GetPage(ctx context.Context, accountID uuid.UUID, page int) (*Page, error) {
	b, err := c.rdb.Get(ctx, pageKey(accountID, page)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p Page
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPage stores the page in cache.
func (c *TaskCache) SetPage(ctx context.Context, accountID uuid.UUID, page int, p Page) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, pageKey(accountID, page), b, c.ttl).Err()
}

// Invalidate removes every cached page of the account (cache invalidation on write).
func (c *TaskCache) Invalidate(ctx context.Context, accountID uuid.UUID) error {
	iter := c.rdb.Scan(ctx, 0, keyPagePrefix+accountID.String()+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func pageKey(accountID uuid.UUID, page int) string {
	return keyPagePrefix + accountID.String() + ":" + strconv.Itoa(page)
}
