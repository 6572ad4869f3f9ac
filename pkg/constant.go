package pkg

import "time"

const (
	INF_WEIGHT float64 = 1e15

	// default travel speed used when a request does not override it.
	DEFAULT_SPEED_KMPH = 30.0

	// snapping a query point further than this (planar degrees) from the
	// nearest vertex still succeeds, but raises an advisory.
	MAX_SNAP_DISTANCE = 0.02

	GRAPH_CACHE_CAPACITY = 200
	RISK_MEMO_CAPACITY   = 2000
	GRAPH_CACHE_TTL      = 300 * time.Second

	MIN_HOUR = 0
	MAX_HOUR = 23

	// hour at which the late-night risk boost starts ramping.
	NIGHT_RAMP_HOUR = 20
)

// route-type presets and the blend factor they map to.
type RouteType string

const (
	ROUTE_SHORTEST RouteType = "shortest"
	ROUTE_SAFEST   RouteType = "safest"
	ROUTE_BALANCED RouteType = "balanced"
)

// Alpha returns the blend factor for the preset. "balanced" keeps the
// caller-supplied alpha.
func (rt RouteType) Alpha(requested float64) float64 {
	switch rt {
	case ROUTE_SHORTEST:
		return 1.0
	case ROUTE_SAFEST:
		return 0.0
	default:
		return requested
	}
}

func (rt RouteType) Valid() bool {
	switch rt {
	case ROUTE_SHORTEST, ROUTE_SAFEST, ROUTE_BALANCED:
		return true
	}
	return false
}

const (
	DEBUG = false
)
