package routing

import (
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/geo"
	"github.com/lintang-b-s/saferoutex/pkg/util"
)

// PathFinder runs A* over the blended edge weights with planar distance as
// the heuristic. The weight mixes minutes and risk units while the heuristic
// is pure distance, so the heuristic is not guaranteed admissible and
// optimality is a best-effort approximation. Accepted trade-off, do not
// "fix" it silently.
type PathFinder struct{}

func NewPathFinder() *PathFinder {
	return &PathFinder{}
}

// Search returns the vertex path from origin to dest. origin == dest
// short-circuits to a single-vertex path without running the search.
func (pf *PathFinder) Search(g *datastructure.Graph, origin, dest datastructure.Coordinate) ([]datastructure.Coordinate, error) {
	if origin == dest {
		return []datastructure.Coordinate{origin}, nil
	}

	pq := datastructure.NewFourAryHeap[datastructure.Coordinate]()

	costSoFar := make(map[datastructure.Coordinate]float64)
	costSoFar[origin] = 0.0

	cameFrom := make(map[datastructure.Coordinate]datastructure.Coordinate)
	inQueue := make(map[datastructure.Coordinate]*datastructure.PriorityQueueNode[datastructure.Coordinate])
	visited := make(map[datastructure.Coordinate]struct{})

	originNode := datastructure.NewPriorityQueueNode(0, origin)
	pq.Insert(originNode)
	inQueue[origin] = originNode

	for !pq.IsEmpty() {
		current, _ := pq.ExtractMin()
		u := current.GetItem()
		delete(inQueue, u)

		if u == dest {
			return pf.unpackPath(cameFrom, origin, dest), nil
		}
		visited[u] = struct{}{}

		g.ForOutEdgesOf(u, func(e *datastructure.Edge) {
			v := e.GetHead()
			if _, ok := visited[v]; ok {
				return
			}

			newCost := costSoFar[u] + e.GetWeight()
			oldCost, seen := costSoFar[v]
			if seen && newCost >= oldCost {
				return
			}

			costSoFar[v] = newCost
			cameFrom[v] = u
			priority := newCost + geo.PlanarDistance(v, dest)

			if node, ok := inQueue[v]; ok {
				pq.DecreaseKey(node, priority)
			} else {
				node := datastructure.NewPriorityQueueNode(priority, v)
				pq.Insert(node)
				inQueue[v] = node
			}
		})
	}

	return nil, util.WrapErrorf(nil, util.ErrNoPath,
		"no route from (%f,%f) to (%f,%f)", origin.GetLat(), origin.GetLon(), dest.GetLat(), dest.GetLon())
}

func (pf *PathFinder) unpackPath(cameFrom map[datastructure.Coordinate]datastructure.Coordinate,
	origin, dest datastructure.Coordinate) []datastructure.Coordinate {
	path := []datastructure.Coordinate{dest}
	for cur := dest; cur != origin; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	return util.ReverseG(path)
}
