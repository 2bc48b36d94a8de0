package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"regguard/internal/sanctions/metrics"
	"regguard/internal/sanctions/models"
	"regguard/internal/sanctions/parser"
	"regguard/pkg/platform/sentinel"
)

// ttl matches the upstream publication cadence. Policy constant, not config.
const ttl = 24 * time.Hour

// Fetcher retrieves the raw watchlist document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Snapshot is the two-tier cache result: the dataset plus whether it was
// served past its freshness window after a failed refresh. Callers that only
// need the data use Dataset; the Stale flag exists for logging and audit.
type Snapshot struct {
	Dataset   *models.Dataset
	FetchedAt time.Time
	Stale     bool
}

// Cache owns the single in-memory copy of the parsed dataset. Concurrent
// callers racing past an expired TTL collapse into one in-flight refresh and
// share its outcome; a refresh swaps dataset and timestamp together under the
// lock, so a torn read is never observable.
type Cache struct {
	fetcher Fetcher
	logger  *slog.Logger
	metrics *metrics.Metrics

	group singleflight.Group

	mu        sync.RWMutex
	current   *models.Dataset
	fetchedAt time.Time
}

type Option func(*Cache)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

func New(fetcher Fetcher, opts ...Option) (*Cache, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	c := &Cache{
		fetcher: fetcher,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the current dataset, refreshing when the copy is missing or
// older than the TTL. A failed refresh downgrades to the prior snapshot when
// one exists; ErrUnavailable surfaces only on a cold-start failure.
func (c *Cache) Get(ctx context.Context) (Snapshot, error) {
	if snap, ok := c.fresh(); ok {
		c.metrics.CacheServe("fresh")
		return snap, nil
	}

	v, err, _ := c.group.Do("sdn", func() (any, error) {
		// Another caller may have finished the refresh while this one queued.
		if snap, ok := c.fresh(); ok {
			return snap, nil
		}
		return c.refresh(ctx)
	})
	if err == nil {
		c.metrics.CacheServe("refreshed")
		return v.(Snapshot), nil
	}

	// Stale-serving: availability over freshness.
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current != nil {
		c.logger.Warn("serving stale sanctions dataset",
			"fetched_at", c.fetchedAt,
			"error", err,
		)
		c.metrics.CacheServe("stale")
		return Snapshot{Dataset: c.current, FetchedAt: c.fetchedAt, Stale: true}, nil
	}
	return Snapshot{}, fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
}

func (c *Cache) fresh() (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current != nil && time.Since(c.fetchedAt) < ttl {
		return Snapshot{Dataset: c.current, FetchedAt: c.fetchedAt}, true
	}
	return Snapshot{}, false
}

func (c *Cache) refresh(ctx context.Context) (Snapshot, error) {
	raw, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.metrics.DatasetRefresh("failure")
		return Snapshot{}, err
	}
	ds, err := parser.Parse(raw)
	if err != nil {
		c.metrics.DatasetRefresh("failure")
		return Snapshot{}, err
	}

	now := time.Now()
	c.mu.Lock()
	c.current = ds
	c.fetchedAt = now
	c.mu.Unlock()

	c.metrics.DatasetRefresh("success")
	c.logger.Info("sanctions dataset refreshed",
		"entries", len(ds.Entries),
		"published", ds.PublicationDate,
	)
	return Snapshot{Dataset: ds, FetchedAt: now}, nil
}
