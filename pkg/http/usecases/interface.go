package usecases

import (
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/engine/routing"
)

type RoutingEngine interface {
	ComputeRoute(origin, destination datastructure.Coordinate, hour int, alpha float64) (*routing.RouteResult, error)
	ReloadDataset(path string) (int, error)
	UpdateRiskConfig(kv map[string]float64) uint64
}
