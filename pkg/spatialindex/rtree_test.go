package spatialindex

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/engine/routing"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gridGraph(n int) *datastructure.Graph {
	g := datastructure.NewGraph()
	for i := 0; i < n; i++ {
		for j := 0; j < n-1; j++ {
			u := datastructure.NewCoordinate(float64(i)*0.01, float64(j)*0.01)
			v := datastructure.NewCoordinate(float64(i)*0.01, float64(j+1)*0.01)
			g.AddEdge(datastructure.NewEdge(fmt.Sprintf("s-%d-%d", i, j), u, v, 1, 0.1, 1))
		}
	}
	return g
}

func TestRtreeLocatorMatchesLinearScan(t *testing.T) {
	g := gridGraph(8)
	rt := NewRtreeLocator(zap.NewNop())
	ll := routing.NewLinearLocator()

	queries := []datastructure.Coordinate{
		datastructure.NewCoordinate(0.0, 0.0),
		datastructure.NewCoordinate(0.031, 0.019),
		datastructure.NewCoordinate(0.0449, 0.0551),
		datastructure.NewCoordinate(-0.5, -0.5),
		datastructure.NewCoordinate(1.0, 1.0),
	}

	for _, q := range queries {
		wantVertex, wantDist, err := ll.Nearest(g, q)
		require.NoError(t, err)

		gotVertex, gotDist, err := rt.Nearest(g, q)
		require.NoError(t, err)

		assert.Equal(t, wantVertex, gotVertex, "query (%f,%f)", q.GetLat(), q.GetLon())
		assert.InDelta(t, wantDist, gotDist, 1e-12)
	}
}

func TestRtreeLocatorReindexesNewGraphInstance(t *testing.T) {
	rt := NewRtreeLocator(zap.NewNop())

	first := gridGraph(2)
	_, _, err := rt.Nearest(first, datastructure.NewCoordinate(0, 0))
	require.NoError(t, err)

	// a rebuilt graph with a shifted vertex set must not be served from the
	// index of the previous instance
	second := datastructure.NewGraph()
	a := datastructure.NewCoordinate(5, 5)
	b := datastructure.NewCoordinate(5, 5.01)
	second.AddEdge(datastructure.NewEdge("a-b", a, b, 1, 0.1, 1))

	near, _, err := rt.Nearest(second, datastructure.NewCoordinate(5.001, 5.001))
	require.NoError(t, err)
	assert.Equal(t, a, near)
}

func TestRtreeLocatorFailsOnEmptyGraph(t *testing.T) {
	rt := NewRtreeLocator(zap.NewNop())

	_, _, err := rt.Nearest(datastructure.NewGraph(), datastructure.NewCoordinate(1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(util.ErrorCode(err), util.ErrEmptyGraph))
}
