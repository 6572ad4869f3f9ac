package engine

import (
	"sync"
	"time"

	"github.com/lintang-b-s/saferoutex/pkg"
	"github.com/lintang-b-s/saferoutex/pkg/dataset"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/engine/routing"
	"github.com/lintang-b-s/saferoutex/pkg/metrics"
	"github.com/lintang-b-s/saferoutex/pkg/riskmodel"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"go.uber.org/zap"
)

// Engine is the risk-weighted routing context object. It owns the segment
// store, risk config/model, graph cache and locator, there is no ambient
// process-wide state. Mutations (dataset reload, config update) are
// serialized through a single writer mutex; queries capture a consistent
// (dataset version, config version) snapshot up front and then run
// concurrently, graphs built from a given version tuple are immutable.
type Engine struct {
	log *zap.Logger

	store      *dataset.SegmentStore
	loader     *dataset.Loader
	riskModel  *riskmodel.Model
	builder    *routing.GraphBuilder
	cache      *GraphCache
	locator    routing.NodeLocator
	pathFinder *routing.PathFinder
	assembler  *routing.RouteAssembler
	metrics    *metrics.EngineMetrics

	snapTolerance float64

	writeMu sync.Mutex
}

type Options struct {
	SpeedKmph     float64
	SnapTolerance float64
	CacheCapacity int
	CacheTTL      time.Duration
}

func (o Options) withDefaults() Options {
	if o.SpeedKmph <= 0 {
		o.SpeedKmph = pkg.DEFAULT_SPEED_KMPH
	}
	if o.SnapTolerance <= 0 {
		o.SnapTolerance = pkg.MAX_SNAP_DISTANCE
	}
	if o.CacheCapacity <= 0 {
		o.CacheCapacity = pkg.GRAPH_CACHE_CAPACITY
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = pkg.GRAPH_CACHE_TTL
	}
	return o
}

func NewEngine(store *dataset.SegmentStore, riskModel *riskmodel.Model,
	locator routing.NodeLocator, em *metrics.EngineMetrics, opts Options,
	log *zap.Logger) *Engine {

	opts = opts.withDefaults()
	e := &Engine{
		log:           log,
		store:         store,
		loader:        dataset.NewLoader(store, log),
		riskModel:     riskModel,
		builder:       routing.NewGraphBuilder(store, riskModel, opts.SpeedKmph, log),
		locator:       locator,
		pathFinder:    routing.NewPathFinder(),
		assembler:     routing.NewRouteAssembler(),
		metrics:       em,
		snapTolerance: opts.SnapTolerance,
	}
	e.cache = NewGraphCache(opts.CacheCapacity, opts.CacheTTL, riskModel.PurgeMemo, log)
	return e
}

// ComputeRoute answers one route query. Any panic out of graph build or
// search is recovered and reported as a generic routing failure, a request
// worker never dies on it.
func (e *Engine) ComputeRoute(origin, destination datastructure.Coordinate,
	hour int, alpha float64) (result *routing.RouteResult, err error) {

	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("panic during route computation", zap.Any("panic", r))
			result, err = nil, util.WrapErrorf(nil, util.ErrRoutingFailure, "routing failure")
		}
		e.observe(err, started)
	}()

	datasetVersion := e.store.Version()
	configVersion := e.riskModel.GetConfig().Version()

	key := CacheKey{
		Hour:           hour,
		Alpha:          alpha,
		DatasetVersion: datasetVersion,
		ConfigVersion:  configVersion,
	}
	g, hit := e.cache.GetOrBuild(key, func() *datastructure.Graph {
		buildStart := time.Now()
		built := e.builder.Build(hour, alpha)
		e.metrics.ObserveGraphBuild(time.Since(buildStart).Seconds())
		return built
	})
	if hit {
		e.metrics.GraphCacheHit()
	} else {
		e.metrics.GraphCacheMiss()
	}

	var warnings []string

	originVertex, originDist, err := e.locator.Nearest(g, origin)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrorCode(err), "origin too far from known roads")
	}
	if originDist > e.snapTolerance {
		e.log.Warn("snapping far origin",
			zap.Float64("distance", originDist), zap.Float64("tolerance", e.snapTolerance))
		warnings = append(warnings, "origin is far from the known road network")
	}

	destVertex, destDist, err := e.locator.Nearest(g, destination)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrorCode(err), "destination too far from known roads")
	}
	if destDist > e.snapTolerance {
		e.log.Warn("snapping far destination",
			zap.Float64("distance", destDist), zap.Float64("tolerance", e.snapTolerance))
		warnings = append(warnings, "destination is far from the known road network")
	}

	var path []datastructure.Coordinate
	if originVertex == destVertex {
		// trivial route, skip the search entirely
		path = []datastructure.Coordinate{originVertex}
	} else {
		path, err = e.pathFinder.Search(g, originVertex, destVertex)
		if err != nil {
			return nil, err
		}
	}

	result, err = e.assembler.Assemble(g, path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		result.AddWarning(w)
	}
	return result, nil
}

// ReloadDataset loads the dataset at path and, on success, synchronously
// purges the graph cache and risk memo before returning. A failed load keeps
// the previous dataset and caches intact.
func (e *Engine) ReloadDataset(path string) (int, error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	n, err := e.loader.LoadFile(path)
	if err != nil {
		return 0, err
	}
	e.cache.Purge()
	return n, nil
}

// ReplaceSegments swaps in an already-built segment set, with the same
// invalidation semantics as ReloadDataset.
func (e *Engine) ReplaceSegments(segments []*dataset.Segment) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if err := e.store.Replace(segments); err != nil {
		return err
	}
	e.cache.Purge()
	return nil
}

// UpdateRiskConfig merges kv into the risk config and synchronously purges
// the graph cache and risk memo. Returns the new config version.
func (e *Engine) UpdateRiskConfig(kv map[string]float64) uint64 {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	version := e.riskModel.GetConfig().Update(kv)
	e.cache.Purge()
	e.log.Info("risk config updated",
		zap.Uint64("configVersion", version), zap.Int("keys", len(kv)))
	return version
}

func (e *Engine) Close() {
	e.cache.Close()
}

func (e *Engine) observe(err error, started time.Time) {
	status := "ok"
	if err != nil {
		switch util.ErrorCode(err) {
		case util.ErrNoPath:
			status = "no_route"
		case util.ErrEmptyGraph:
			status = "empty_graph"
		default:
			status = "failure"
		}
	}
	e.metrics.ObserveRouteRequest(status, time.Since(started).Seconds())
}
