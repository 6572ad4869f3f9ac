package routing

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locatorFixture() *datastructure.Graph {
	g := datastructure.NewGraph()
	a := datastructure.NewCoordinate(0, 0)
	b := datastructure.NewCoordinate(0, oneKM)
	c := datastructure.NewCoordinate(oneKM, oneKM)
	g.AddEdge(datastructure.NewEdge("a-b", a, b, 2, 0.1, 1))
	g.AddEdge(datastructure.NewEdge("b-c", b, c, 2, 0.1, 1))
	return g
}

func TestLinearLocatorFindsNearestVertex(t *testing.T) {
	g := locatorFixture()
	ll := NewLinearLocator()

	near, dist, err := ll.Nearest(g, datastructure.NewCoordinate(0.0001, oneKM+0.0001))
	require.NoError(t, err)
	assert.Equal(t, datastructure.NewCoordinate(0, oneKM), near)
	assert.InDelta(t, 0.000141, dist, 1e-4)
}

func TestLinearLocatorExactHitHasZeroDistance(t *testing.T) {
	g := locatorFixture()
	ll := NewLinearLocator()

	near, dist, err := ll.Nearest(g, datastructure.NewCoordinate(0, 0))
	require.NoError(t, err)
	assert.Equal(t, datastructure.NewCoordinate(0, 0), near)
	assert.Equal(t, 0.0, dist)
}

func TestLinearLocatorFailsOnEmptyGraph(t *testing.T) {
	ll := NewLinearLocator()

	_, _, err := ll.Nearest(datastructure.NewGraph(), datastructure.NewCoordinate(1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(util.ErrorCode(err), util.ErrEmptyGraph))
}
