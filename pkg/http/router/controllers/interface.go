package controllers

import (
	"github.com/lintang-b-s/saferoutex/pkg"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/engine/routing"
)

type RoutingService interface {
	ComputeRoute(origin, destination datastructure.Coordinate, hour int, alpha float64,
		routeType pkg.RouteType) (*routing.RouteResult, string, float64, error)
	ReloadDataset() (int, error)
	UpdateRiskConfig(kv map[string]float64) (uint64, error)
}
