package routing

import (
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/geo"
	"github.com/lintang-b-s/saferoutex/pkg/util"
)

// NodeLocator maps an arbitrary query coordinate to the nearest existing
// graph vertex. A far-away point is not an error, the caller decides whether
// the returned distance warrants an advisory. Implementations only fail when
// the graph has no vertices at all.
type NodeLocator interface {
	Nearest(g *datastructure.Graph, p datastructure.Coordinate) (datastructure.Coordinate, float64, error)
}

// LinearLocator scans every vertex by planar distance. Fine at neighborhood
// scale; swap in the r-tree locator from pkg/spatialindex for larger graphs.
type LinearLocator struct{}

func NewLinearLocator() *LinearLocator {
	return &LinearLocator{}
}

func (ll *LinearLocator) Nearest(g *datastructure.Graph, p datastructure.Coordinate) (datastructure.Coordinate, float64, error) {
	vertices := g.GetVertices()
	if len(vertices) == 0 {
		return datastructure.Coordinate{}, 0,
			util.WrapErrorf(nil, util.ErrEmptyGraph, "nearest-vertex lookup on empty graph")
	}

	closest := vertices[0]
	closestDist := geo.PlanarDistance(closest, p)
	for _, v := range vertices[1:] {
		if d := geo.PlanarDistance(v, p); d < closestDist {
			closest, closestDist = v, d
		}
	}
	return closest, closestDist, nil
}
