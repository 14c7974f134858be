// Grow a time-aware RRT between moving obstacles and dump what it looks like
// over time
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/winterbloom/t-obstacles/config"
	"github.com/winterbloom/t-obstacles/geometry"
	"github.com/winterbloom/t-obstacles/logging"
	"github.com/winterbloom/t-obstacles/render"
	"github.com/winterbloom/t-obstacles/rrt"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "rrt-obstacles"
	app.Usage = "Rapidly exploring random trees among moving obstacles"

	configFlag := cli.StringFlag{Name: "config, c", Value: "", Usage: "YAML session file; defaults to the demo session"}

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Grow a tree and report it at several times",
			Flags: []cli.Flag{
				configFlag,
				cli.Uint64Flag{Name: "seed", Usage: "Random seed; 0 seeds from the clock"},
				cli.IntFlag{Name: "frames", Value: 0, Usage: "Number of evenly spaced query times; 0 means one per time step"},
				cli.StringFlag{Name: "times", Value: "", Usage: "Comma separated query times, overrides --frames"},
				cli.StringFlag{Name: "goal", Value: "", Usage: "Drive a robot to the node nearest x,y"},
				cli.StringFlag{Name: "out", Value: "", Usage: "Directory receiving one SVG frame per query time"},
				cli.BoolFlag{Name: "json", Usage: "Also write a JSON snapshot next to each frame"},
				cli.StringFlag{Name: "log-level", Value: "", Usage: "Overrides log.level"},
				cli.BoolFlag{Name: "dev", Usage: "Human readable logs"},
			},
			Action: runAction,
		},
		{
			Name:  "config",
			Usage: "Print the effective configuration",
			Flags: []cli.Flag{configFlag},
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c.String("config"))
				if err != nil {
					return err
				}
				return cfg.Write(os.Stdout)
			},
		},
	}

	return app
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

type runOptions struct {
	Times []float64
	Goal  *geometry.Vector2
	Out   string
	JSON  bool
}

func runAction(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("seed") {
		cfg.Tune.Seed = c.Uint64("seed")
	}
	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development || c.Bool("dev"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	tune, err := cfg.RrtTune()
	if err != nil {
		return err
	}

	opts := runOptions{Out: c.String("out"), JSON: c.Bool("json")}
	if opts.Times, err = queryTimes(tune, c.Int("frames"), c.String("times")); err != nil {
		return err
	}
	if goal := c.String("goal"); goal != "" {
		point, err := parsePoint(goal)
		if err != nil {
			return err
		}
		opts.Goal = &point
	}

	return run(cfg, opts, logger)
}

func run(cfg *config.Config, opts runOptions, logger *zap.Logger) error {
	tune, err := cfg.RrtTune()
	if err != nil {
		return err
	}
	shapes, err := cfg.Shapes()
	if err != nil {
		return err
	}

	planner, err := rrt.NewPlanner(tune, shapes, rrt.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := planner.CreateRRT(); err != nil {
		return err
	}

	var robot *rrt.Robot
	if opts.Goal != nil {
		if robot, err = planner.Robot(*opts.Goal); err != nil {
			return err
		}
	}

	// snapshots share the tree's validity flags, so queries run one at a time
	frames := make([]render.Frame, 0, len(opts.Times))
	for _, t := range opts.Times {
		snap := planner.Snapshot(t)
		frame := render.Frame{
			Snapshot: snap,
			Width:    tune.Width,
			Height:   tune.Height,
			NodeSize: tune.NodeSize,
		}

		line := fmt.Sprintf("t=%6.2f nodes=%d edges=%d invalid_nodes=%d invalid_edges=%d reached=%d",
			t, len(snap.Nodes), len(snap.Edges), snap.InvalidNodes(), snap.InvalidEdges(), snap.Reached())

		if robot != nil {
			pos := robot.Position(t)
			frame.Path = robot.Waypoints()
			frame.Robot = &pos

			state := "driving"
			if node, blocked := robot.Blocked(); blocked {
				state = fmt.Sprintf("blocked at node %d", node.ID)
			} else if robot.Done(t) {
				state = "arrived"
			}
			line += fmt.Sprintf(" robot=(%.1f, %.1f) %s", pos.X(), pos.Y(), state)
		}

		fmt.Println(line)
		frames = append(frames, frame)
	}

	if opts.Out == "" {
		return nil
	}
	if err := writeFrames(opts.Out, frames, opts.JSON); err != nil {
		return err
	}
	logger.Info("frames written", zap.String("dir", opts.Out), zap.Int("count", len(frames)))
	return nil
}

func writeFrames(dir string, frames []render.Frame, withJSON bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, frame := range frames {
		g.Go(func() error {
			name := filepath.Join(dir, fmt.Sprintf("frame-%03d", i))
			if err := writeSVG(name+".svg", frame); err != nil {
				return err
			}
			if withJSON {
				return writeJSON(name+".json", frame.Snapshot)
			}
			return nil
		})
	}
	return g.Wait()
}

func writeSVG(path string, frame render.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create frame")
	}
	if err := render.WriteFrame(f, frame); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func writeJSON(path string, snap rrt.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return errors.Wrapf(os.WriteFile(path, raw, 0o644), "write %s", path)
}

// queryTimes returns the explicit list when given, otherwise frames evenly
// spaced times over [0, MaxTime]
func queryTimes(tune rrt.Tune, frames int, explicit string) ([]float64, error) {
	if explicit != "" {
		var times []float64
		for _, field := range strings.Split(explicit, ",") {
			t, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "query time %q", field)
			}
			times = append(times, t)
		}
		return times, nil
	}

	if frames < 0 {
		return nil, errors.Errorf("frames must not be negative, got %d", frames)
	}
	if frames == 0 {
		frames = tune.Steps() + 1
	}
	if frames == 1 {
		return []float64{0}, nil
	}

	times := make([]float64, frames)
	for i := range times {
		times[i] = tune.MaxTime * float64(i) / float64(frames-1)
	}
	return times, nil
}

func parsePoint(s string) (geometry.Vector2, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return geometry.Vector2{}, errors.Errorf("point %q must be x,y", s)
	}

	var xy [2]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return geometry.Vector2{}, errors.Wrapf(err, "point %q", s)
		}
		xy[i] = v
	}
	return geometry.Vec2(xy[0], xy[1]), nil
}
