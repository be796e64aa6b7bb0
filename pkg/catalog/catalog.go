package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultTTL bounds how often a remote refresh is attempted.
	DefaultTTL = 45 * time.Minute

	snapshotKey  = "catalog:snapshot"
	freshnessKey = "catalog:fresh"

	batchSize       = 3
	interBatchDelay = 300 * time.Millisecond
)

// Catalog serves vocabulary snapshots. Reads are synchronous against the
// cached snapshot, which never expires: once remote entries are merged in
// they keep being served even while a later refresh runs or fails. The TTL
// only gates how often a refresh is started. Construction never fails and
// absence of the remote source degrades to the static lists.
type Catalog struct {
	logger *slog.Logger
	source Source
	ttl    time.Duration
	cache  *gocache.Cache

	mu         sync.Mutex
	refreshing bool
}

// New creates a catalog. source may be nil, in which case only the bundled
// lists are served.
func New(logger *slog.Logger, source Source, ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Catalog{
		logger: logger,
		source: source,
		ttl:    ttl,
		cache:  gocache.New(ttl, ttl/2),
	}
}

// Snapshot returns the current vocabulary snapshot. The first call serves the
// static lists immediately and enriches from the remote source in the
// background; validation never blocks on network I/O. At most one refresh is
// started per TTL window.
func (c *Catalog) Snapshot(ctx context.Context) *Snapshot {
	snapshot := c.cachedSnapshot()
	if snapshot == nil {
		snapshot = c.staticSnapshot()
		c.cache.Set(snapshotKey, snapshot, gocache.NoExpiration)
	}

	if c.source != nil {
		if _, fresh := c.cache.Get(freshnessKey); !fresh {
			c.cache.Set(freshnessKey, time.Now(), c.ttl)
			c.startRefresh(ctx)
		}
	}

	return snapshot
}

func (c *Catalog) cachedSnapshot() *Snapshot {
	cached, ok := c.cache.Get(snapshotKey)
	if !ok {
		return nil
	}

	snapshot, valid := cached.(*Snapshot)
	if !valid {
		return nil
	}

	return snapshot
}

// staticSnapshot merges the bundled lists, falling back to the minimal
// hardcoded vocabulary if the comprehensive list is somehow empty.
func (c *Catalog) staticSnapshot() *Snapshot {
	snapshot := NewSnapshot(minimalEntries, comprehensiveEntries)
	if snapshot.Len() == 0 {
		snapshot = NewSnapshot(minimalEntries)
	}

	return snapshot
}

// startRefresh launches a single background enrichment if none is running.
func (c *Catalog) startRefresh(ctx context.Context) {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()

		return
	}

	c.refreshing = true
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			c.refreshing = false
			c.mu.Unlock()
		}()

		c.refresh(context.WithoutCancel(ctx))
	}()
}

// refresh queries the remote source in small serialized batches and, when
// anything was found, swaps in a snapshot of remote entries merged over the
// comprehensive list. Failures are logged and the previous snapshot stands.
func (c *Catalog) refresh(ctx context.Context) {
	remote := make([]Entry, 0)

	for i := 0; i < len(searchTerms); i += batchSize {
		end := min(i+batchSize, len(searchTerms))

		for _, term := range searchTerms[i:end] {
			entries, err := c.source.Search(ctx, term)
			if err != nil {
				c.logger.Warn("node catalog source lookup failed",
					"term", term, "error", err)

				continue
			}

			remote = append(remote, entries...)
		}

		if end < len(searchTerms) {
			select {
			case <-ctx.Done():
				return
			case <-time.After(interBatchDelay):
			}
		}
	}

	if len(remote) == 0 {
		c.logger.Info("node catalog refresh yielded nothing, keeping static vocabulary")

		return
	}

	snapshot := NewSnapshot(minimalEntries, comprehensiveEntries, remote)
	c.cache.Set(snapshotKey, snapshot, gocache.NoExpiration)

	c.logger.Info("node catalog refreshed", "types", snapshot.Len())
}
