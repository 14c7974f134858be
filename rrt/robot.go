package rrt

import "github.com/winterbloom/t-obstacles/geometry"

// Robot drives along a root to goal path at the tree's traversal speed. Its
// schedule comes from the arrival times, so LabelTimes must have run.
type Robot struct {
	tree *Tree
	Path []int
}

func NewRobot(tree *Tree, goal int) *Robot {
	return &Robot{tree: tree, Path: tree.PathTo(goal)}
}

func (r *Robot) Goal() *Node {
	return r.tree.Node(r.Path[len(r.Path)-1])
}

// Position is where the robot is at time t, at the root before it leaves and
// parked on the goal once it got there
func (r *Robot) Position(t float64) geometry.Vector2 {
	if t <= 0 || len(r.Path) == 1 {
		return r.tree.Node(r.Path[0]).Loc
	}

	for i := 1; i < len(r.Path); i++ {
		from, to := r.tree.Node(r.Path[i-1]), r.tree.Node(r.Path[i])
		if t >= to.Arrival {
			continue
		}

		leg := to.Arrival - from.Arrival
		if leg <= 0 {
			return to.Loc
		}
		return geometry.Lerp(from.Loc, to.Loc, (t-from.Arrival)/leg)
	}

	return r.Goal().Loc
}

func (r *Robot) Done(t float64) bool {
	return t >= r.Goal().Arrival
}

// Blocked returns the first node of the path flagged invalid by the last
// Validity call
func (r *Robot) Blocked() (*Node, bool) {
	for _, id := range r.Path {
		if node := r.tree.Node(id); !node.Valid {
			return node, true
		}
	}
	return nil, false
}

// Waypoints are the path locations, root first
func (r *Robot) Waypoints() []geometry.Vector2 {
	points := make([]geometry.Vector2, len(r.Path))
	for i, id := range r.Path {
		points[i] = r.tree.Node(id).Loc
	}
	return points
}
