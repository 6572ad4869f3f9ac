package routing

import (
	"runtime"
	"sort"

	"github.com/lintang-b-s/saferoutex/pkg/concurrent"
	"github.com/lintang-b-s/saferoutex/pkg/costfunction"
	"github.com/lintang-b-s/saferoutex/pkg/dataset"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/riskmodel"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"go.uber.org/zap"
)

// GraphBuilder materializes a directed weighted graph from the segment store
// and the risk model. Building is a pure function of (hour, alpha) plus the
// ambient dataset and risk-config versions, so built graphs can be cached
// under that key.
type GraphBuilder struct {
	store      *dataset.SegmentStore
	riskModel  *riskmodel.Model
	speedKmph  float64
	numWorkers int
	log        *zap.Logger
}

func NewGraphBuilder(store *dataset.SegmentStore, riskModel *riskmodel.Model,
	speedKmph float64, log *zap.Logger) *GraphBuilder {
	return &GraphBuilder{
		store:      store,
		riskModel:  riskModel,
		speedKmph:  speedKmph,
		numWorkers: runtime.NumCPU(),
		log:        log,
	}
}

// Build scores every segment for the given hour, blends eta and risk with
// alpha and adds exactly one directed edge start->end per segment. The
// reverse direction is never added, the road network is asymmetric by
// construction and stays that way.
func (gb *GraphBuilder) Build(hour int, alpha float64) *datastructure.Graph {
	segments, lengths, _ := gb.store.Snapshot()
	cf := costfunction.NewBlendedCostFunction(alpha)

	pool := concurrent.NewWorkerPool[*dataset.Segment, *datastructure.Edge](
		gb.numWorkers, util.MaxG(len(segments), 1))
	pool.Start(func(s *dataset.Segment) *datastructure.Edge {
		eta := computeEta(lengths[s.GetID()], gb.speedKmph)
		risk := gb.riskModel.Score(s, hour)
		return datastructure.NewEdge(s.GetID(), s.GetStart(), s.GetEnd(),
			eta, risk, cf.GetWeight(eta, risk))
	})

	for _, s := range segments {
		pool.AddJob(s)
	}
	pool.Close()
	pool.Wait()

	edges := make([]*datastructure.Edge, 0, len(segments))
	for e := range pool.CollectResults() {
		edges = append(edges, e)
	}
	// deterministic adjacency order regardless of worker scheduling
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].GetSegmentID() < edges[j].GetSegmentID()
	})

	g := datastructure.NewGraph()
	for _, e := range edges {
		g.AddEdge(e)
	}

	if gb.log != nil {
		gb.log.Debug("graph built",
			zap.Int("hour", hour),
			zap.Float64("alpha", alpha),
			zap.Int("vertices", g.NumberOfVertices()),
			zap.Int("edges", g.NumberOfEdges()))
	}
	return g
}

// computeEta converts a planar length in km to minutes at the configured
// speed, rounded to 2 decimals.
func computeEta(lengthKM, speedKmph float64) float64 {
	return util.RoundFloat((lengthKM/speedKmph)*60, 2)
}
