package config

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/winterbloom/t-obstacles/geometry"
	"github.com/winterbloom/t-obstacles/obstacle"
	"github.com/winterbloom/t-obstacles/rrt"
)

// Config describes one planning session: how to log, how to grow the tree
// and which obstacles move through the workspace
type Config struct {
	Log       LogConfig        `yaml:"log"`
	Tune      TuneConfig       `yaml:"tune"`
	Obstacles []ObstacleConfig `yaml:"obstacles"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type TuneConfig struct {
	BranchLenMin float64   `yaml:"branch_len_min"`
	BranchLenMax float64   `yaml:"branch_len_max"`
	BranchWeight float64   `yaml:"branch_weight"`
	TimeStep     float64   `yaml:"time_step"`
	MaxTime      float64   `yaml:"max_time"`
	Speed        float64   `yaml:"speed"`
	NodeSize     float64   `yaml:"node_size"`
	MaxRetries   int       `yaml:"max_retries"`
	Width        float64   `yaml:"width"`
	Height       float64   `yaml:"height"`
	Base         []float64 `yaml:"base,flow"`
	Seed         uint64    `yaml:"seed"`
}

// ObstacleConfig is a polygon in its own frame. Origin and Velocity are
// (x, y, theta) and (vx, vy, omega); theta values are in radians.
type ObstacleConfig struct {
	Name     string      `yaml:"name,omitempty"`
	Vertices [][]float64 `yaml:"vertices,flow"`
	Origin   []float64   `yaml:"origin,flow"`
	Velocity []float64   `yaml:"velocity,flow,omitempty"`
}

// Default is the demo session: a 400x400 workspace, the base near the bottom
// and three obstacles, one of them moving and spinning
func Default() *Config {
	tune := rrt.DefaultTune()
	return &Config{
		Log: LogConfig{Level: "info"},
		Tune: TuneConfig{
			BranchLenMin: tune.BranchLenMin,
			BranchLenMax: tune.BranchLenMax,
			BranchWeight: tune.BranchWeight,
			TimeStep:     tune.TimeStep,
			MaxTime:      tune.MaxTime,
			Speed:        tune.Speed,
			NodeSize:     tune.NodeSize,
			MaxRetries:   tune.MaxRetries,
			Width:        tune.Width,
			Height:       tune.Height,
			Base:         []float64{tune.Base.X(), tune.Base.Y()},
		},
		Obstacles: []ObstacleConfig{
			{
				Name:     "pentagon",
				Vertices: [][]float64{{-40, -40}, {40, -40}, {60, 0}, {40, 40}, {-40, 40}},
				Origin:   []float64{100, 100, 0},
			},
			{
				Name:     "diamond",
				Vertices: [][]float64{{0, -40}, {40, 0}, {0, 40}, {-40, 0}},
				Origin:   []float64{200, 240, 0},
			},
			{
				Name:     "bar",
				Vertices: [][]float64{{-50, -20}, {50, -20}, {50, 20}, {-50, 20}},
				Origin:   []float64{300, 300, 0},
				Velocity: []float64{6, 0, math.Pi / 10},
			},
		},
	}
}

// Load reads a YAML file on top of Default
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Parse decodes YAML on top of Default and validates the result. Keys left
// out keep their default value.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode yaml")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Write encodes the configuration as YAML
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}

func (c *Config) Validate() error {
	if _, err := c.RrtTune(); err != nil {
		return err
	}
	if _, err := c.Shapes(); err != nil {
		return err
	}
	return nil
}

// RrtTune converts the tune section and checks it
func (c *Config) RrtTune() (rrt.Tune, error) {
	if len(c.Tune.Base) != 2 {
		return rrt.Tune{}, errors.Errorf("tune.base needs 2 values, got %d", len(c.Tune.Base))
	}

	tune := rrt.Tune{
		BranchLenMin: c.Tune.BranchLenMin,
		BranchLenMax: c.Tune.BranchLenMax,
		BranchWeight: c.Tune.BranchWeight,
		TimeStep:     c.Tune.TimeStep,
		MaxTime:      c.Tune.MaxTime,
		Speed:        c.Tune.Speed,
		NodeSize:     c.Tune.NodeSize,
		MaxRetries:   c.Tune.MaxRetries,
		Width:        c.Tune.Width,
		Height:       c.Tune.Height,
		Base:         geometry.Vec2(c.Tune.Base[0], c.Tune.Base[1]),
		Seed:         c.Tune.Seed,
	}
	if err := tune.Validate(); err != nil {
		return rrt.Tune{}, errors.Wrap(err, "tune")
	}
	return tune, nil
}

// Shapes builds the obstacles in the order they are listed
func (c *Config) Shapes() ([]*obstacle.Shape, error) {
	shapes := make([]*obstacle.Shape, 0, len(c.Obstacles))
	for i, oc := range c.Obstacles {
		shape, err := oc.Shape()
		if err != nil {
			return nil, errors.Wrapf(err, "obstacle %d %q", i, oc.Name)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func (oc ObstacleConfig) Shape() (*obstacle.Shape, error) {
	vertices := make([]geometry.Vector2, 0, len(oc.Vertices))
	for i, v := range oc.Vertices {
		if len(v) != 2 {
			return nil, errors.Errorf("vertex %d needs 2 values, got %d", i, len(v))
		}
		vertices = append(vertices, geometry.Vec2(v[0], v[1]))
	}

	origin, err := vector3(oc.Origin, "origin")
	if err != nil {
		return nil, err
	}
	velocity, err := vector3(oc.Velocity, "velocity")
	if err != nil {
		return nil, err
	}

	return obstacle.NewShape(vertices, origin, velocity)
}

// vector3 accepts (x, y), (x, y, theta) or nothing for the zero vector
func vector3(values []float64, field string) (geometry.Vector3, error) {
	switch len(values) {
	case 0:
		return geometry.Vector3{}, nil
	case 2:
		return geometry.Vec3(values[0], values[1], 0), nil
	case 3:
		return geometry.Vec3(values[0], values[1], values[2]), nil
	}
	return geometry.Vector3{}, errors.Errorf("%s needs 2 or 3 values, got %d", field, len(values))
}
