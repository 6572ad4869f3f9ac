package routing

import (
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/util"
)

const WarnSameVertex = "origin and destination resolved to the same vertex"

// RouteResult is the reported route. Ephemeral, recomputed per query, never
// cached.
type RouteResult struct {
	Path       []datastructure.Coordinate
	Eta        float64 // minutes, cumulative
	Risk       float64 // normalized per segment
	Confidence float64
	Geometry   [][2]datastructure.Coordinate
	Warnings   []string
}

func (r *RouteResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// RouteAssembler aggregates the edges along a vertex path into a route.
type RouteAssembler struct{}

func NewRouteAssembler() *RouteAssembler {
	return &RouteAssembler{}
}

// Assemble sums eta and risk across consecutive edges and concatenates each
// edge's geometry in path order, shared endpoints are not deduplicated. A
// single-vertex path yields the trivial route (eta 0, risk 0, confidence 1)
// with an advisory.
func (ra *RouteAssembler) Assemble(g *datastructure.Graph, path []datastructure.Coordinate) (*RouteResult, error) {
	if len(path) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrRoutingFailure, "empty vertex path")
	}

	if len(path) == 1 {
		return &RouteResult{
			Path:       path,
			Eta:        0,
			Risk:       0,
			Confidence: 1,
			Geometry:   make([][2]datastructure.Coordinate, 0),
			Warnings:   []string{WarnSameVertex},
		}, nil
	}

	var (
		eta, risk float64
		geometry  = make([][2]datastructure.Coordinate, 0, len(path)-1)
	)
	for i := 0; i < len(path)-1; i++ {
		e, ok := g.GetEdgeBetween(path[i], path[i+1])
		if !ok {
			return nil, util.WrapErrorf(nil, util.ErrRoutingFailure,
				"path references missing edge (%f,%f)->(%f,%f)",
				path[i].GetLat(), path[i].GetLon(), path[i+1].GetLat(), path[i+1].GetLon())
		}
		eta += e.GetEta()
		risk += e.GetRisk()
		geometry = append(geometry, e.GetGeometry())
	}

	segmentCount := util.MaxG(len(path)-1, 1)
	normalizedRisk := util.RoundFloat(risk/float64(segmentCount), 2)

	return &RouteResult{
		Path:       path,
		Eta:        util.RoundFloat(eta, 2),
		Risk:       normalizedRisk,
		Confidence: util.RoundFloat(1/(1+normalizedRisk), 2),
		Geometry:   geometry,
	}, nil
}
