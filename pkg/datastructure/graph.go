package datastructure

// Edge is one directed arc of the routing graph. A segment contributes
// exactly one edge start->end, the reverse direction is never implied. The
// network is asymmetric by construction.
type Edge struct {
	segmentID string
	tail      Coordinate
	head      Coordinate
	eta       float64 // minutes
	risk      float64 // unitless
	weight    float64 // alpha*eta + (1-alpha)*risk
}

func NewEdge(segmentID string, tail, head Coordinate, eta, risk, weight float64) *Edge {
	return &Edge{
		segmentID: segmentID,
		tail:      tail,
		head:      head,
		eta:       eta,
		risk:      risk,
		weight:    weight,
	}
}

func (e *Edge) GetSegmentID() string {
	return e.segmentID
}

func (e *Edge) GetTail() Coordinate {
	return e.tail
}

func (e *Edge) GetHead() Coordinate {
	return e.head
}

func (e *Edge) GetEta() float64 {
	return e.eta
}

func (e *Edge) GetRisk() float64 {
	return e.risk
}

func (e *Edge) GetWeight() float64 {
	return e.weight
}

// GetGeometry returns the ordered endpoint pair of the edge.
func (e *Edge) GetGeometry() [2]Coordinate {
	return [2]Coordinate{e.tail, e.head}
}

// Graph is a directed weighted graph keyed by exact coordinates. Instances
// are frozen once built, concurrent readers need no locking.
type Graph struct {
	adjacencyList map[Coordinate][]*Edge
	vertices      []Coordinate
	numEdges      int
}

func NewGraph() *Graph {
	return &Graph{
		adjacencyList: make(map[Coordinate][]*Edge),
		vertices:      make([]Coordinate, 0),
	}
}

// AddEdge inserts a directed edge tail->head, registering both endpoints as
// vertices. Only the graph builder calls this, before the graph is published.
func (g *Graph) AddEdge(e *Edge) {
	g.addVertex(e.tail)
	g.addVertex(e.head)
	g.adjacencyList[e.tail] = append(g.adjacencyList[e.tail], e)
	g.numEdges++
}

func (g *Graph) addVertex(v Coordinate) {
	if _, ok := g.adjacencyList[v]; ok {
		return
	}
	g.adjacencyList[v] = nil
	g.vertices = append(g.vertices, v)
}

func (g *Graph) GetVertices() []Coordinate {
	return g.vertices
}

func (g *Graph) ForOutEdgesOf(v Coordinate, fn func(e *Edge)) {
	for _, e := range g.adjacencyList[v] {
		fn(e)
	}
}

// GetEdgeBetween returns the directed edge u->v if it exists.
func (g *Graph) GetEdgeBetween(u, v Coordinate) (*Edge, bool) {
	for _, e := range g.adjacencyList[u] {
		if e.head == v {
			return e, true
		}
	}
	return nil, false
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}
