package engine

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"go.uber.org/zap"
)

// CacheKey identifies one built graph. The version counters make stale
// entries unreachable after a dataset reload or risk-config update; the
// explicit purge on those events keeps the cache from filling up with dead
// keys, the TTL sweep below is only a backstop.
type CacheKey struct {
	Hour           int
	Alpha          float64
	DatasetVersion uint64
	ConfigVersion  uint64
}

// GraphCache memoizes built graphs in a bounded LRU.
type GraphCache struct {
	cache *lru.Cache[CacheKey, *datastructure.Graph]
	ttl   time.Duration
	log   *zap.Logger

	mu        sync.Mutex
	lastClear time.Time
	onPurge   func()

	stop     chan struct{}
	stopOnce sync.Once
}

// NewGraphCache builds the cache and starts the TTL sweep. onPurge runs after
// every full clear (explicit or TTL) so the owner can drop derived caches
// such as the risk memo alongside.
func NewGraphCache(capacity int, ttl time.Duration, onPurge func(), log *zap.Logger) *GraphCache {
	cache, _ := lru.New[CacheKey, *datastructure.Graph](capacity)
	gc := &GraphCache{
		cache:     cache,
		ttl:       ttl,
		log:       log,
		lastClear: time.Now(),
		onPurge:   onPurge,
		stop:      make(chan struct{}),
	}
	go gc.sweep()
	return gc
}

// GetOrBuild returns the cached graph for key or builds and inserts it.
// Reports whether the lookup was a hit. Concurrent misses on the same key may
// build twice; both builds are identical for a fixed key, so last write wins
// harmlessly.
func (gc *GraphCache) GetOrBuild(key CacheKey, build func() *datastructure.Graph) (*datastructure.Graph, bool) {
	if g, ok := gc.cache.Get(key); ok {
		return g, true
	}
	g := build()
	gc.cache.Add(key, g)
	return g, false
}

func (gc *GraphCache) Len() int {
	return gc.cache.Len()
}

// Purge drops every cached graph and resets the TTL clock. Called
// synchronously by dataset reload and risk-config update before the next
// lookup can happen.
func (gc *GraphCache) Purge() {
	gc.cache.Purge()

	gc.mu.Lock()
	gc.lastClear = time.Now()
	gc.mu.Unlock()

	if gc.onPurge != nil {
		gc.onPurge()
	}
}

func (gc *GraphCache) Close() {
	gc.stopOnce.Do(func() {
		close(gc.stop)
	})
}

func (gc *GraphCache) sweep() {
	ticker := time.NewTicker(gc.ttl / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			gc.mu.Lock()
			expired := time.Since(gc.lastClear) > gc.ttl
			gc.mu.Unlock()
			if expired {
				gc.Purge()
				if gc.log != nil {
					gc.log.Info("graph cache auto-cleared", zap.Duration("ttl", gc.ttl))
				}
			}
		case <-gc.stop:
			return
		}
	}
}
