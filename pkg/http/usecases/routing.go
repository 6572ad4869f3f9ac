package usecases

import (
	"github.com/lintang-b-s/saferoutex/pkg"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/engine/routing"
	"github.com/lintang-b-s/saferoutex/pkg/geo"
	"github.com/lintang-b-s/saferoutex/pkg/riskmodel"
	"go.uber.org/zap"
)

type RoutingService struct {
	log         *zap.Logger
	engine      RoutingEngine
	datasetPath string
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, datasetPath string) *RoutingService {
	return &RoutingService{
		log:         log,
		engine:      engine,
		datasetPath: datasetPath,
	}
}

// ComputeRoute resolves the route-type preset to a blend factor and runs the
// engine. Returns the route, its encoded polyline and the time multiplier
// that applied to the query hour.
func (rs *RoutingService) ComputeRoute(origin, destination datastructure.Coordinate,
	hour int, alpha float64, routeType pkg.RouteType) (*routing.RouteResult, string, float64, error) {

	blend := routeType.Alpha(alpha)
	result, err := rs.engine.ComputeRoute(origin, destination, hour, blend)
	if err != nil {
		return nil, "", 0, err
	}

	return result, geo.PolylineFromCoords(result.Path), riskmodel.TimeMultiplier(hour), nil
}

func (rs *RoutingService) ReloadDataset() (int, error) {
	return rs.engine.ReloadDataset(rs.datasetPath)
}

func (rs *RoutingService) UpdateRiskConfig(kv map[string]float64) (uint64, error) {
	return rs.engine.UpdateRiskConfig(kv), nil
}
