package rrt

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/winterbloom/t-obstacles/geometry"
)

// ErrNoFeasibleDirection means no candidate inside the workspace was found
// within Tune.MaxRetries draws
var ErrNoFeasibleDirection = errors.New("no feasible branch direction")

// sweep is how much the branch direction turns after a rejected candidate
const sweep = math.Pi / 10

// BranchProbability is the chance that a node sprouts when the tree holds
// nodeCount nodes. It starts at 1 and decays towards 0 as the tree fills.
func BranchProbability(nodeCount int, weight float64) float64 {
	return 1 - math.Tanh(float64(nodeCount)/weight)
}

// sampleBranch draws a random direction and turns it until a random length
// along it stays inside the workspace
func (p *Planner) sampleBranch(from geometry.Vector2) (geometry.Vector2, error) {
	bounds := p.tune.Workspace()
	angle := p.rng.Float64() * 2.0 * math.Pi // random number between [0, 2 pi)

	for i := 0; i < p.tune.MaxRetries; i++ {
		dist := p.rng.Float64()*p.tune.BranchLenMax + p.tune.BranchLenMin
		candidate := from.Add(geometry.Polar(angle, dist))
		if bounds.Contains(candidate) {
			return candidate, nil
		}
		angle += sweep
	}

	return geometry.Vector2{}, ErrNoFeasibleDirection
}

// AddBranch grows one branch off trunk tagged with generation time t. An
// unknown trunk panics; on ErrNoFeasibleDirection the tree is left as is.
func (p *Planner) AddBranch(trunk int, t float64) (*Node, error) {
	from := p.tree.Node(trunk).Loc

	point, err := p.sampleBranch(from)
	if err != nil {
		return nil, errors.Wrapf(err, "branch off node %d", trunk)
	}

	node, _ := p.tree.Attach(trunk, point, p.tune.NodeSize, t)
	return node, nil
}

// AddBranches gives every valid node that existed before the call one chance
// to sprout, and returns how many branches were added
func (p *Planner) AddBranches(t float64) int {
	count := p.tree.Len()
	added := 0

	for id := 0; id < count; id++ {
		if !p.tree.Node(id).Valid {
			continue
		}
		if p.rng.Float64() >= BranchProbability(p.tree.Len(), p.tune.BranchWeight) {
			continue
		}

		if _, err := p.AddBranch(id, t); err != nil {
			p.log.Debug("branch skipped", zap.Int("trunk", id), zap.Float64("t", t), zap.Error(err))
			continue
		}
		added++
	}

	return added
}
