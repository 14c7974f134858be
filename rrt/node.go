package rrt

import (
	"github.com/dhconnelly/rtreego"

	"github.com/winterbloom/t-obstacles/geometry"
)

// NoNode is the virtual parent of the root
const NoNode = -1

var (
	tolerance = 0.01
)

// Node Represents an RRT Node
type Node struct {
	ID     int
	Parent int
	Loc    geometry.Vector2
	Size   float64

	// Valid is rederived by every Validity call
	Valid bool
	// Arrival is the time the robot reaches the node from the root
	Arrival float64
	// Born is the generation time at which the node was grown
	Born float64
}

// Bounds returns a tiny rect at the node location for rtreego
func (n *Node) Bounds() rtreego.Rect {
	p := rtreego.Point{n.Loc.X(), n.Loc.Y()}

	return p.ToRect(tolerance)
}

// Edge links a trunk (Start) to the branch grown from it (End)
type Edge struct {
	ID    int
	Start int
	End   int

	Valid   bool
	Arrival float64
}

// Other returns the endpoint opposite to id
func (e *Edge) Other(id int) int {
	if e.Start == id {
		return e.End
	}
	return e.Start
}
