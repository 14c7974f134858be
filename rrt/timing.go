package rrt

import "github.com/winterbloom/t-obstacles/geometry"

// LabelTimes walks the tree depth first from the root and stamps every edge
// and the node it leads to with the time needed to get there at speed.
func LabelTimes(tree *Tree, speed float64) {
	root := tree.Root()
	if root == nil {
		return
	}

	root.Arrival = 0
	visited := map[int]bool{root.ID: true}
	labelFrom(tree, root, speed, visited)
}

func labelFrom(tree *Tree, node *Node, speed float64, visited map[int]bool) {
	for _, edge := range tree.Incident(node.ID) {
		next := tree.Node(edge.Other(node.ID))
		if visited[next.ID] {
			continue
		}
		visited[next.ID] = true

		arrival := node.Arrival + geometry.Distance(node.Loc, next.Loc)/speed
		edge.Arrival = arrival
		next.Arrival = arrival

		labelFrom(tree, next, speed, visited)
	}
}
