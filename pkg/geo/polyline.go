package geo

import (
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes a coordinate path with the google polyline
// format.
func PolylineFromCoords(coords []datastructure.Coordinate) string {
	buf := make([][]float64, 0, len(coords))
	for _, c := range coords {
		buf = append(buf, []float64{c.GetLat(), c.GetLon()})
	}
	return string(polyline.EncodeCoords(buf))
}
