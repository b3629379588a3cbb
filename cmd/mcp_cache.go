package cmd

import (
	"sync"
	"time"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/tree"
)

// mcpCacheKey identifies a unique snapshot scope.
type mcpCacheKey struct {
	App         string
	Depth       int
	MaxChildren int
}

// mcpCacheEntry holds a cached snapshot with its timestamp.
type mcpCacheEntry struct {
	appName   string
	pid       int
	root      *model.Node
	timestamp time.Time
}

// mcpTreeCache provides a TTL-based cache for snapshot trees. Reads during
// the TTL window reuse the last tree; any action invalidates the acting
// app's entries.
type mcpTreeCache struct {
	mu      sync.Mutex
	entries map[mcpCacheKey]mcpCacheEntry
	ttl     time.Duration
}

// newMCPTreeCache creates a new cache. A ttl of 0 disables caching.
func newMCPTreeCache(ttl time.Duration) *mcpTreeCache {
	return &mcpTreeCache{
		entries: make(map[mcpCacheKey]mcpCacheEntry),
		ttl:     ttl,
	}
}

// snapshot returns a cached tree if within TTL, otherwise builds a fresh one.
func (c *mcpTreeCache) snapshot(provider *ax.Provider, sets *model.RoleSets, appHint string, depth, maxChildren int) (string, int, *model.Node, error) {
	key := mcpCacheKey{App: appHint, Depth: depth, MaxChildren: maxChildren}

	if c.ttl > 0 {
		c.mu.Lock()
		if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
			appName, pid, root := entry.appName, entry.pid, entry.root
			c.mu.Unlock()
			return appName, pid, root, nil
		}
		c.mu.Unlock()
	}

	app, contentRoot, err := resolveContentRoot(provider, appHint)
	if err != nil {
		return "", 0, nil, err
	}

	b := tree.Builder{MaxDepth: depth, MaxChildren: maxChildren, Sets: sets}
	root := b.Build(contentRoot)

	if c.ttl > 0 {
		c.mu.Lock()
		c.entries[key] = mcpCacheEntry{
			appName:   app.Name(),
			pid:       app.PID(),
			root:      root,
			timestamp: time.Now(),
		}
		c.mu.Unlock()
	}

	return app.Name(), app.PID(), root, nil
}

// invalidateApp removes all cache entries for the given app hint.
func (c *mcpTreeCache) invalidateApp(app string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.App == app {
			delete(c.entries, k)
		}
	}
}

// invalidateAll clears the entire cache.
func (c *mcpTreeCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[mcpCacheKey]mcpCacheEntry)
}
