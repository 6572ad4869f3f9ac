package routing

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSumsEtaAndNormalizesRisk(t *testing.T) {
	a := datastructure.NewCoordinate(0, 0)
	b := datastructure.NewCoordinate(0, oneKM)
	c := datastructure.NewCoordinate(0, 2*oneKM)

	g := datastructure.NewGraph()
	g.AddEdge(datastructure.NewEdge("a-b", a, b, 2.00, 0.0, 1))
	g.AddEdge(datastructure.NewEdge("b-c", b, c, 2.00, 0.9, 1))

	route, err := NewRouteAssembler().Assemble(g, []datastructure.Coordinate{a, b, c})
	require.NoError(t, err)

	assert.Equal(t, 4.00, route.Eta)
	// 0.9 total over 2 segments
	assert.Equal(t, 0.45, route.Risk)
	assert.Equal(t, 0.69, route.Confidence)
	assert.Equal(t, [][2]datastructure.Coordinate{{a, b}, {b, c}}, route.Geometry)
	assert.Empty(t, route.Warnings)
}

func TestAssembleConfidenceBounds(t *testing.T) {
	a := datastructure.NewCoordinate(0, 0)
	b := datastructure.NewCoordinate(0, oneKM)

	testCases := []struct {
		name           string
		risk           float64
		wantConfidence float64
	}{
		{name: "risk free", risk: 0.0, wantConfidence: 1.0},
		{name: "unit risk", risk: 1.0, wantConfidence: 0.5},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := datastructure.NewGraph()
			g.AddEdge(datastructure.NewEdge("a-b", a, b, 2.00, tt.risk, 1))

			route, err := NewRouteAssembler().Assemble(g, []datastructure.Coordinate{a, b})
			require.NoError(t, err)
			assert.Equal(t, tt.wantConfidence, route.Confidence)
		})
	}
}

func TestAssembleSingleVertexIsTrivialRoute(t *testing.T) {
	a := datastructure.NewCoordinate(1, 2)

	route, err := NewRouteAssembler().Assemble(datastructure.NewGraph(), []datastructure.Coordinate{a})
	require.NoError(t, err)

	assert.Equal(t, 0.0, route.Eta)
	assert.Equal(t, 0.0, route.Risk)
	assert.Equal(t, 1.0, route.Confidence)
	assert.Empty(t, route.Geometry)
	assert.Equal(t, []string{WarnSameVertex}, route.Warnings)
}

func TestAssembleFailsOnMissingEdge(t *testing.T) {
	a := datastructure.NewCoordinate(0, 0)
	b := datastructure.NewCoordinate(0, oneKM)

	_, err := NewRouteAssembler().Assemble(datastructure.NewGraph(), []datastructure.Coordinate{a, b})
	require.Error(t, err)
	assert.True(t, errors.Is(util.ErrorCode(err), util.ErrRoutingFailure))
}

func TestAssembleFailsOnEmptyPath(t *testing.T) {
	_, err := NewRouteAssembler().Assemble(datastructure.NewGraph(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(util.ErrorCode(err), util.ErrRoutingFailure))
}
