package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/saferoutex/pkg/dataset"
	"github.com/lintang-b-s/saferoutex/pkg/engine"
	"github.com/lintang-b-s/saferoutex/pkg/http"
	"github.com/lintang-b-s/saferoutex/pkg/http/usecases"
	"github.com/lintang-b-s/saferoutex/pkg/logger"
	"github.com/lintang-b-s/saferoutex/pkg/metrics"
	"github.com/lintang-b-s/saferoutex/pkg/riskmodel"
	"github.com/lintang-b-s/saferoutex/pkg/spatialindex"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("use_rate_limit", true, "enable per-client rate limiting on the routing API")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	store := dataset.NewSegmentStore(logger)
	riskConfig := riskmodel.NewConfig()
	riskModel := riskmodel.NewModel(riskConfig)
	locator := spatialindex.NewRtreeLocator(logger)
	engineMetrics := metrics.NewEngineMetrics(prometheus.DefaultRegisterer)

	routingEngine := engine.NewEngine(store, riskModel, locator, engineMetrics, engine.Options{
		SpeedKmph:     viper.GetFloat64("SPEED_KMPH"),
		SnapTolerance: viper.GetFloat64("SNAP_TOLERANCE"),
		CacheCapacity: viper.GetInt("GRAPH_CACHE_CAPACITY"),
		CacheTTL:      viper.GetDuration("GRAPH_CACHE_TTL"),
	}, logger)
	defer routingEngine.Close()

	datasetPath := viper.GetString("DATASET_PATH")
	if n, err := routingEngine.ReloadDataset(datasetPath); err != nil {
		logger.Error("initial dataset load failed, starting with an empty dataset",
			zap.String("path", datasetPath), zap.Error(err))
	} else {
		logger.Info("dataset loaded", zap.String("path", datasetPath), zap.Int("segments", n))
	}

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, routingEngine, datasetPath)
	ctx, cleanup := NewContext()

	_, err = api.Use(ctx, logger, *useRateLimit, routingService)
	if err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("saferoutex routing engine server stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb
}
