package rrt

import "github.com/winterbloom/t-obstacles/geometry"

// Blocker tells whether the straight move a->b collides with something at t
type Blocker interface {
	Blocks(a, b geometry.Vector2, t float64) bool
}

// Validity rederives every validity flag for time t. An edge is invalid when
// an obstacle crosses it at t, and everything downstream of an invalid edge
// is invalid too. Flags are reset on the way down, so calls for different t
// can come in any order.
func Validity(tree *Tree, blocker Blocker, t float64) {
	root := tree.Root()
	if root == nil {
		return
	}

	root.Valid = true
	propagate(tree, blocker, NoNode, root.ID, true, t)
}

// propagate visits every edge of at except the one back to from. inValid is
// the state of the edge used to reach at.
func propagate(tree *Tree, blocker Blocker, from, at int, inValid bool, t float64) {
	here := tree.Node(at)
	for _, edge := range tree.Incident(at) {
		next := edge.Other(at)
		if next == from {
			continue
		}
		far := tree.Node(next)

		edge.Valid = true
		far.Valid = true
		if blocker != nil && blocker.Blocks(here.Loc, far.Loc, t) {
			edge.Valid = false
		}

		// nothing past an invalid edge is reachable
		if !edge.Valid || !inValid {
			edge.Valid = false
			far.Valid = false
		}

		propagate(tree, blocker, at, next, edge.Valid, t)
	}
}
