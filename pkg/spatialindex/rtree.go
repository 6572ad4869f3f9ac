package spatialindex

import (
	"sync"

	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/geo"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// RtreeLocator is the spatial-index node locator, a drop-in replacement for
// the linear scan when graphs grow. Vertices are indexed as point boxes, the
// index is rebuilt lazily whenever a different graph instance is queried
// (graphs are immutable, so the vertex set of an indexed graph never
// changes under us).
type RtreeLocator struct {
	mu      sync.Mutex
	indexed *datastructure.Graph
	tr      *rtree.RTreeG[datastructure.Coordinate]
	log     *zap.Logger
}

func NewRtreeLocator(log *zap.Logger) *RtreeLocator {
	return &RtreeLocator{log: log}
}

func (rl *RtreeLocator) Nearest(g *datastructure.Graph, p datastructure.Coordinate) (datastructure.Coordinate, float64, error) {
	if g.NumberOfVertices() == 0 {
		return datastructure.Coordinate{}, 0,
			util.WrapErrorf(nil, util.ErrEmptyGraph, "nearest-vertex lookup on empty graph")
	}

	tr := rl.indexFor(g)

	var (
		nearest datastructure.Coordinate
		found   bool
	)
	point := [2]float64{p.GetLon(), p.GetLat()}
	tr.Nearby(
		rtree.BoxDist[float64, datastructure.Coordinate](point, point, nil),
		func(min, max [2]float64, v datastructure.Coordinate, dist float64) bool {
			nearest = v
			found = true
			return false
		},
	)
	if !found {
		return datastructure.Coordinate{}, 0,
			util.WrapErrorf(nil, util.ErrEmptyGraph, "spatial index returned no vertex")
	}
	return nearest, geo.PlanarDistance(nearest, p), nil
}

func (rl *RtreeLocator) indexFor(g *datastructure.Graph) *rtree.RTreeG[datastructure.Coordinate] {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.indexed == g {
		return rl.tr
	}

	var tr rtree.RTreeG[datastructure.Coordinate]
	for _, v := range g.GetVertices() {
		point := [2]float64{v.GetLon(), v.GetLat()}
		tr.Insert(point, point, v)
	}
	rl.indexed = g
	rl.tr = &tr

	if rl.log != nil {
		rl.log.Debug("r-tree vertex index rebuilt", zap.Int("vertices", g.NumberOfVertices()))
	}
	return rl.tr
}
