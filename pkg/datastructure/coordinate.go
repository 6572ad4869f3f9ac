package datastructure

// Coordinate is a graph vertex identity. Vertices are compared exactly, two
// segment endpoints only share a vertex when their coordinates are
// bit-identical (no tolerance based merging).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}
