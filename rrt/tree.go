package rrt

import (
	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"

	"github.com/winterbloom/t-obstacles/geometry"
)

// pairKey identifies the link between two nodes whatever its direction
type pairKey struct {
	lo, hi int
}

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Tree is an arena of nodes and edges addressed by their ids. Nodes and edges
// are never removed, so ids stay dense and equal to their index.
type Tree struct {
	nodes    []*Node
	edges    []*Edge
	incident [][]int
	pairs    map[pairKey]int
	rtree    *rtreego.Rtree
}

func NewTree() *Tree {
	return &Tree{
		pairs: make(map[pairKey]int),
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) EdgeCount() int {
	return len(t.edges)
}

// Node panics on ids the tree never handed out
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.nodes) {
		panic(errors.Errorf("rrt: unknown node %d (tree has %d)", id, len(t.nodes)))
	}
	return t.nodes[id]
}

func (t *Tree) Edge(id int) *Edge {
	if id < 0 || id >= len(t.edges) {
		panic(errors.Errorf("rrt: unknown edge %d (tree has %d)", id, len(t.edges)))
	}
	return t.edges[id]
}

// Root is the first node, nil while the tree is empty
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[0]
}

// Nodes and Edges share the tree's own records, callers must not modify them
func (t *Tree) Nodes() []*Node {
	return t.nodes
}

func (t *Tree) Edges() []*Edge {
	return t.edges
}

// Incident lists the edges touching a node in creation order
func (t *Tree) Incident(id int) []*Edge {
	t.Node(id)
	edges := make([]*Edge, len(t.incident[id]))
	for i, edgeID := range t.incident[id] {
		edges[i] = t.edges[edgeID]
	}
	return edges
}

// EdgeBetween finds the link between a and b in either direction
func (t *Tree) EdgeBetween(a, b int) (*Edge, bool) {
	id, ok := t.pairs[keyOf(a, b)]
	if !ok {
		return nil, false
	}
	return t.edges[id], true
}

func (t *Tree) addNode(loc geometry.Vector2, size, born float64, parent int) *Node {
	node := &Node{
		ID:     len(t.nodes),
		Parent: parent,
		Loc:    loc,
		Size:   size,
		Valid:  true,
		Born:   born,
	}
	t.nodes = append(t.nodes, node)
	t.incident = append(t.incident, nil)
	t.rtree.Insert(node)

	return node
}

// AddRoot creates node 0. The tree must be empty.
func (t *Tree) AddRoot(loc geometry.Vector2, size float64) *Node {
	if len(t.nodes) != 0 {
		panic(errors.New("rrt: tree already has a root"))
	}
	return t.addNode(loc, size, 0, NoNode)
}

// Attach grows a new node at loc off trunk and links them
func (t *Tree) Attach(trunk int, loc geometry.Vector2, size, born float64) (*Node, *Edge) {
	t.Node(trunk)

	node := t.addNode(loc, size, born, trunk)
	edge := &Edge{
		ID:    len(t.edges),
		Start: trunk,
		End:   node.ID,
		Valid: true,
	}
	t.edges = append(t.edges, edge)
	t.incident[trunk] = append(t.incident[trunk], edge.ID)
	t.incident[node.ID] = append(t.incident[node.ID], edge.ID)
	t.pairs[keyOf(trunk, node.ID)] = edge.ID

	return node, edge
}

// Nearest returns the node closest to point, nil while the tree is empty
func (t *Tree) Nearest(point geometry.Vector2) *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	nnSpatial := t.rtree.NearestNeighbor(rtreego.Point{point.X(), point.Y()})
	if nnSpatial == nil {
		return nil
	}
	return nnSpatial.(*Node)
}

// Within returns the nodes inside the box of half side radius around point
func (t *Tree) Within(point geometry.Vector2, radius float64) []*Node {
	rtreePoint := rtreego.Point{point.X(), point.Y()}
	spatialNeighbors := t.rtree.SearchIntersect(rtreePoint.ToRect(radius))

	nodes := make([]*Node, 0, len(spatialNeighbors))
	for _, spatialNeighbor := range spatialNeighbors {
		nodes = append(nodes, spatialNeighbor.(*Node))
	}
	return nodes
}

// PathTo walks parent links from id back to the root and returns the ids
// ordered root first
func (t *Tree) PathTo(id int) []int {
	t.Node(id)

	var path []int
	for current := id; current != NoNode; current = t.nodes[current].Parent {
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
