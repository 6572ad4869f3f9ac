package engine

import (
	"testing"
	"time"

	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetOrBuildCachesPerKey(t *testing.T) {
	gc := NewGraphCache(10, time.Hour, nil, zap.NewNop())
	defer gc.Close()

	builds := 0
	build := func() *datastructure.Graph {
		builds++
		return datastructure.NewGraph()
	}
	key := CacheKey{Hour: 22, Alpha: 0.5, DatasetVersion: 1, ConfigVersion: 0}

	first, hit := gc.GetOrBuild(key, build)
	assert.False(t, hit)

	second, hit := gc.GetOrBuild(key, build)
	assert.True(t, hit)
	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)

	// any field change is a different key
	other := key
	other.ConfigVersion = 1
	_, hit = gc.GetOrBuild(other, build)
	assert.False(t, hit)
	assert.Equal(t, 2, builds)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	gc := NewGraphCache(2, time.Hour, nil, zap.NewNop())
	defer gc.Close()

	build := func() *datastructure.Graph { return datastructure.NewGraph() }

	k1 := CacheKey{Hour: 1}
	k2 := CacheKey{Hour: 2}
	k3 := CacheKey{Hour: 3}

	gc.GetOrBuild(k1, build)
	gc.GetOrBuild(k2, build)
	gc.GetOrBuild(k1, build) // refresh k1
	gc.GetOrBuild(k3, build) // evicts k2

	_, hit := gc.GetOrBuild(k1, build)
	assert.True(t, hit)
	_, hit = gc.GetOrBuild(k2, build)
	assert.False(t, hit)
}

func TestPurgeDropsEntriesAndNotifiesOwner(t *testing.T) {
	purged := 0
	gc := NewGraphCache(10, time.Hour, func() { purged++ }, zap.NewNop())
	defer gc.Close()

	build := func() *datastructure.Graph { return datastructure.NewGraph() }
	gc.GetOrBuild(CacheKey{Hour: 1}, build)
	gc.GetOrBuild(CacheKey{Hour: 2}, build)
	require.Equal(t, 2, gc.Len())

	gc.Purge()

	assert.Equal(t, 0, gc.Len())
	assert.Equal(t, 1, purged)
}

func TestSweepClearsExpiredCache(t *testing.T) {
	gc := NewGraphCache(10, 80*time.Millisecond, nil, zap.NewNop())
	defer gc.Close()

	gc.GetOrBuild(CacheKey{Hour: 1}, func() *datastructure.Graph {
		return datastructure.NewGraph()
	})
	require.Equal(t, 1, gc.Len())

	assert.Eventually(t, func() bool {
		return gc.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
