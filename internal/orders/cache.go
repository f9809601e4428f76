package orders

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/shopfront/internal/domain/model"
)

// GoodCache memoizes good lookups across order renders. A failed lookup is
// cached as a stub entry so a missing good never blocks the table and is
// not re-fetched on every render.
type GoodCache struct {
	api API

	mu    sync.Mutex
	goods map[int64]model.Good
}

// NewGoodCache builds an empty cache over the given client.
func NewGoodCache(api API) *GoodCache {
	return &GoodCache{
		api:   api,
		goods: make(map[int64]model.Good),
	}
}

// Resolve returns the good for id, fetching it on first use.
func (c *GoodCache) Resolve(ctx context.Context, id int64) model.Good {
	c.mu.Lock()
	if g, ok := c.goods[id]; ok {
		c.mu.Unlock()
		return g
	}
	c.mu.Unlock()

	good, err := c.api.GetGood(ctx, id)
	if err != nil || good == nil {
		good = &model.Good{ID: id, Name: fmt.Sprintf("Item #%d", id)}
	}

	c.mu.Lock()
	c.goods[id] = *good
	c.mu.Unlock()
	return *good
}

// ResolveMany resolves a batch of ids concurrently, preserving order.
func (c *GoodCache) ResolveMany(ctx context.Context, ids []int64) []model.Good {
	out := make([]model.Good, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			out[i] = c.Resolve(ctx, id)
		}(i, id)
	}
	wg.Wait()
	return out
}
