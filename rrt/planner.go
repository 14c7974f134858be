package rrt

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/winterbloom/t-obstacles/geometry"
	"github.com/winterbloom/t-obstacles/obstacle"
)

var (
	ErrAlreadyBuilt = errors.New("tree already built")
	ErrNotResumable = errors.New("tree growth cannot be resumed")
	ErrNotBuilt     = errors.New("tree not built yet")
)

// Planner owns the tree of one session together with the obstacles and the
// tuning it was grown with. It is not safe for concurrent use.
type Planner struct {
	tune      Tune
	tree      *Tree
	obstacles obstacle.Set
	rng       *rand.Rand
	log       *zap.Logger
	runID     string
	built     bool
}

type Option func(*Planner)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Planner) {
		p.log = logger
	}
}

// WithRand replaces the random source seeded from Tune.Seed
func WithRand(rng *rand.Rand) Option {
	return func(p *Planner) {
		p.rng = rng
	}
}

// NewPlanner validates tune and prepares an empty tree
func NewPlanner(tune Tune, obstacles []*obstacle.Shape, opts ...Option) (*Planner, error) {
	if err := tune.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tune")
	}

	p := &Planner{
		tune:      tune,
		tree:      NewTree(),
		obstacles: append(obstacle.Set(nil), obstacles...),
		log:       zap.NewNop(),
		runID:     uuid.NewString(),
	}
	for _, opt := range opts {
		opt(p)
	}

	seed := tune.Seed
	if p.rng == nil {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano()) // apparently golang random is deterministic by default
		}
		p.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	p.log = p.log.With(zap.String("run", p.runID))
	p.log.Debug("planner ready",
		zap.Uint64("seed", seed),
		zap.Int("obstacles", len(p.obstacles)),
		zap.Float64("width", tune.Width),
		zap.Float64("height", tune.Height))

	return p, nil
}

func (p *Planner) Tree() *Tree {
	return p.tree
}

func (p *Planner) Tune() Tune {
	return p.tune
}

func (p *Planner) Obstacles() obstacle.Set {
	return p.obstacles
}

func (p *Planner) RunID() string {
	return p.runID
}

func (p *Planner) Built() bool {
	return p.built
}

// CreateRRT grows the whole tree once: the root at the base, a first branch,
// then one generation per time step until MaxTime. Arrival times are labeled
// at the end.
func (p *Planner) CreateRRT() error {
	if p.built {
		return ErrAlreadyBuilt
	}
	p.built = true

	start := time.Now()
	root := p.tree.AddRoot(p.tune.Base, p.tune.NodeSize)
	if _, err := p.AddBranch(root.ID, 0); err != nil {
		return errors.Wrap(err, "initial branch")
	}

	for step := 1; step <= p.tune.Steps(); step++ {
		t := float64(step) * p.tune.TimeStep

		// blocked nodes do not sprout
		p.Validity(t)
		added := p.AddBranches(t)

		p.log.Debug("generation grown",
			zap.Float64("t", t),
			zap.Int("added", added),
			zap.Int("nodes", p.tree.Len()))
	}

	LabelTimes(p.tree, p.tune.Speed)

	p.log.Info("tree built",
		zap.Int("nodes", p.tree.Len()),
		zap.Int("edges", p.tree.EdgeCount()),
		zap.Duration("took", time.Since(start)))

	return nil
}

// Extend is the "more time" action. Growth is done once, so it always fails.
func (p *Planner) Extend() error {
	return ErrNotResumable
}

// Validity rederives node and edge validity for time t
func (p *Planner) Validity(t float64) {
	Validity(p.tree, p.obstacles, t)
}

// Nearest returns the tree node closest to point
func (p *Planner) Nearest(point geometry.Vector2) *Node {
	return p.tree.Nearest(point)
}

// PathTo returns the nodes from the root to the node nearest to goal
func (p *Planner) PathTo(goal geometry.Vector2) ([]*Node, error) {
	if !p.built {
		return nil, ErrNotBuilt
	}

	end := p.tree.Nearest(goal)
	ids := p.tree.PathTo(end.ID)
	path := make([]*Node, len(ids))
	for i, id := range ids {
		path[i] = p.tree.Node(id)
	}
	return path, nil
}

// Robot returns a robot driving from the root to the node nearest to goal
func (p *Planner) Robot(goal geometry.Vector2) (*Robot, error) {
	path, err := p.PathTo(goal)
	if err != nil {
		return nil, err
	}
	return NewRobot(p.tree, path[len(path)-1].ID), nil
}
