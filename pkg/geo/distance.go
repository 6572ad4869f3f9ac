package geo

import (
	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
)

// PlanarDistance computes the euclidean distance between two coordinates in
// degree space. The engine operates at neighborhood scale, a planar metric is
// accurate enough there and keeps eta, snapping and the search heuristic
// consistent with each other.
func PlanarDistance(a, b datastructure.Coordinate) float64 {
	pa := r2.Point{X: a.GetLon(), Y: a.GetLat()}
	pb := r2.Point{X: b.GetLon(), Y: b.GetLat()}
	return pa.Sub(pb).Norm()
}

// PlanarLengthKM approximates a segment length in km from its planar degree
// length. 1 degree ~ 111.195 km (mean earth circumference / 360).
func PlanarLengthKM(a, b datastructure.Coordinate) float64 {
	return PlanarDistance(a, b) * kmPerDegree
}

const kmPerDegree = 111.195
