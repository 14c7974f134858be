package rrt

import "github.com/winterbloom/t-obstacles/geometry"

type NodeState struct {
	ID      int              `json:"id"`
	Loc     geometry.Vector2 `json:"loc"`
	Valid   bool             `json:"valid"`
	Arrival float64          `json:"arrival"`
	Born    float64          `json:"born"`
}

type EdgeState struct {
	Start   int              `json:"start"`
	End     int              `json:"end"`
	From    geometry.Vector2 `json:"from"`
	To      geometry.Vector2 `json:"to"`
	Valid   bool             `json:"valid"`
	Arrival float64          `json:"arrival"`
}

type ObstacleState struct {
	Vertices []geometry.Vector2 `json:"vertices"`
	Centroid geometry.Vector2   `json:"centroid"`
}

// Snapshot is a copy of everything a renderer needs at one query time
type Snapshot struct {
	Time      float64         `json:"time"`
	Nodes     []NodeState     `json:"nodes"`
	Edges     []EdgeState     `json:"edges"`
	Obstacles []ObstacleState `json:"obstacles"`
}

// Snapshot runs Validity for t and copies the resulting state
func (p *Planner) Snapshot(t float64) Snapshot {
	p.Validity(t)

	snap := Snapshot{
		Time:      t,
		Nodes:     make([]NodeState, 0, p.tree.Len()),
		Edges:     make([]EdgeState, 0, p.tree.EdgeCount()),
		Obstacles: make([]ObstacleState, 0, len(p.obstacles)),
	}

	for _, node := range p.tree.Nodes() {
		snap.Nodes = append(snap.Nodes, NodeState{
			ID:      node.ID,
			Loc:     node.Loc,
			Valid:   node.Valid,
			Arrival: node.Arrival,
			Born:    node.Born,
		})
	}

	for _, edge := range p.tree.Edges() {
		snap.Edges = append(snap.Edges, EdgeState{
			Start:   edge.Start,
			End:     edge.End,
			From:    p.tree.Node(edge.Start).Loc,
			To:      p.tree.Node(edge.End).Loc,
			Valid:   edge.Valid,
			Arrival: edge.Arrival,
		})
	}

	for _, shape := range p.obstacles {
		snap.Obstacles = append(snap.Obstacles, ObstacleState{
			Vertices: shape.AbsolutePos(t),
			Centroid: shape.WorldCentroid(t),
		})
	}

	return snap
}

func (s Snapshot) InvalidNodes() int {
	n := 0
	for _, node := range s.Nodes {
		if !node.Valid {
			n++
		}
	}
	return n
}

func (s Snapshot) InvalidEdges() int {
	n := 0
	for _, edge := range s.Edges {
		if !edge.Valid {
			n++
		}
	}
	return n
}

// Reached counts the valid nodes whose arrival time is not after the snapshot
func (s Snapshot) Reached() int {
	n := 0
	for _, node := range s.Nodes {
		if node.Valid && node.Arrival <= s.Time {
			n++
		}
	}
	return n
}
