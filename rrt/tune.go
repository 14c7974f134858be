package rrt

import (
	"math"

	"github.com/pkg/errors"

	"github.com/winterbloom/t-obstacles/geometry"
	"github.com/winterbloom/t-obstacles/utils"
)

// Tune stores every constant used to grow and time the tree. It is passed by
// value and never changed once a Planner holds it.
type Tune struct {
	// length of randomly created branches, drawn in [BranchLenMin, BranchLenMin+BranchLenMax)
	BranchLenMin float64
	BranchLenMax float64

	// how fast the branching probability 1 - tanh(n/BranchWeight) decays with n nodes
	BranchWeight float64

	// one generation of branches is grown every TimeStep until MaxTime
	TimeStep float64
	MaxTime  float64

	// traversal rate used to turn path length into arrival time
	Speed float64

	NodeSize   float64
	MaxRetries int

	Width  float64
	Height float64
	Base   geometry.Vector2

	// 0 seeds from the clock
	Seed uint64
}

func DefaultTune() Tune {
	return Tune{
		BranchLenMin: 20,
		BranchLenMax: 180,
		BranchWeight: 10,
		TimeStep:     0.5,
		MaxTime:      10,
		Speed:        20,
		NodeSize:     7,
		MaxRetries:   200,
		Width:        400,
		Height:       400,
		Base:         geometry.Vec2(200, 375),
	}
}

func (t Tune) Workspace() utils.RectangleX {
	return utils.Workspace(t.Width, t.Height)
}

// Steps is the number of generations grown after the first branch
func (t Tune) Steps() int {
	return int(math.Floor(t.MaxTime/t.TimeStep + 1e-9))
}

func (t Tune) Validate() error {
	switch {
	case t.Width <= 0 || t.Height <= 0:
		return errors.Errorf("workspace must have a positive size, got %vx%v", t.Width, t.Height)
	case t.BranchLenMin <= 0 || t.BranchLenMax <= 0:
		return errors.Errorf("branch lengths must be positive, got min %v max %v", t.BranchLenMin, t.BranchLenMax)
	case t.BranchWeight <= 0:
		return errors.Errorf("branch weight must be positive, got %v", t.BranchWeight)
	case t.TimeStep <= 0:
		return errors.Errorf("time step must be positive, got %v", t.TimeStep)
	case t.MaxTime < 0:
		return errors.Errorf("max time must not be negative, got %v", t.MaxTime)
	case t.Speed <= 0:
		return errors.Errorf("speed must be positive, got %v", t.Speed)
	case t.MaxRetries <= 0:
		return errors.Errorf("max retries must be positive, got %d", t.MaxRetries)
	case !t.Workspace().Contains(t.Base):
		return errors.Errorf("base %v is outside the workspace", t.Base)
	}
	return nil
}
