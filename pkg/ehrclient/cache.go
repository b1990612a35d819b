package ehrclient

import (
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// Query is the result of a cached read. IsLoading is set when Data is
// stale and a background revalidation is running.
type Query[T any] struct {
	Data      T
	Err       error
	IsLoading bool
	// Mutate refetches the key and replaces the cached value.
	Mutate func(ctx context.Context) error
}

type fetcher func(ctx context.Context) (any, error)

// entry values are replaced, never modified in place.
type entry struct {
	data      any
	fetchedAt time.Time
	refetch   fetcher
}

func read[T any](ctx context.Context, c *Client, key CacheKey, fetch func(ctx context.Context) (T, error)) Query[T] {
	refetch := func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}
	query := Query[T]{
		Mutate: func(ctx context.Context) error {
			_, err := c.revalidate(ctx, key, refetch)
			return err
		},
	}

	c.mu.Lock()
	cached, ok := c.entries[key]
	c.mu.Unlock()

	if ok {
		query.Data, _ = cached.data.(T)
		if c.now().Sub(cached.fetchedAt) >= c.staleAfter {
			query.IsLoading = true
			c.revalidateInBackground(key, refetch)
		}
		return query
	}

	value, err := c.revalidate(ctx, key, refetch)
	if err != nil {
		query.Err = err
		return query
	}
	query.Data, _ = value.(T)
	return query
}

// revalidate fetches key once for all concurrent callers and stores the
// result. A failed fetch leaves the cached value untouched.
func (c *Client) revalidate(ctx context.Context, key CacheKey, refetch fetcher) (any, error) {
	value, err, _ := c.group.Do(key.String(), func() (any, error) {
		value, err := refetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = &entry{data: value, fetchedAt: c.now(), refetch: refetch}
		c.mu.Unlock()
		return value, nil
	})
	return value, err
}

func (c *Client) revalidateInBackground(key CacheKey, refetch fetcher) {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), defaultRevalidateTimeout)
		defer cancel()

		if _, err := c.revalidate(ctx, key, refetch); err != nil {
			c.log.Warn("ehrclient revalidation failed",
				zap.String(constvars.LoggingCacheKey, key.String()),
				zap.Error(err),
			)
		}
	}()
}

// invalidate marks every matching entry stale and refetches it in the
// background.
func (c *Client) invalidate(match func(CacheKey) bool) {
	type staleEntry struct {
		key     CacheKey
		refetch fetcher
	}

	c.mu.Lock()
	var stale []staleEntry
	for key, cached := range c.entries {
		if !match(key) {
			continue
		}
		c.entries[key] = &entry{data: cached.data, refetch: cached.refetch}
		stale = append(stale, staleEntry{key: key, refetch: cached.refetch})
	}
	c.mu.Unlock()

	for _, s := range stale {
		c.revalidateInBackground(s.key, s.refetch)
	}
}

// remove drops key without refetching it.
func (c *Client) remove(key CacheKey) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Client) cached(key CacheKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func exactly(key CacheKey) func(CacheKey) bool {
	return func(candidate CacheKey) bool {
		return candidate == key
	}
}

func ofKind(kind Kind) func(CacheKey) bool {
	return func(candidate CacheKey) bool {
		return candidate.Kind == kind
	}
}
