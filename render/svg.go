package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/winterbloom/t-obstacles/geometry"
	"github.com/winterbloom/t-obstacles/rrt"
)

var (
	obstacleColor = colorful.Hsv(210, 1, 0.6)
	centroidColor = colorful.Color{R: 0, G: 1, B: 1}
	invalidColor  = colorful.Color{R: 1, G: 0, B: 0}
	pathColor     = colorful.Hsv(100, 1, 1)
	robotColor    = colorful.Hsv(20, 1, 1)
)

// SVG writes shapes one element per line. The first write error sticks and
// every later call is a no-op.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func (svg *SVG) Err() error {
	return svg.err
}

func style(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return fmt.Sprintf("style='%s' ", strings.Join(s, ";"))
}

func (svg *SVG) Start(width, height float64, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="0 0 %f %f" width="%f" height="%f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, width, height, width, height, style(s))
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

func (svg *SVG) Rect(x, y, w, h float64, s ...string) {
	svg.printf("<rect x='%f' y='%f' width='%f' height='%f' %s/>\n", x, y, w, h, style(s))
}

func (svg *SVG) Line(p1, p2 geometry.Vector2, s ...string) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X(), p1.Y(), p2.X(), p2.Y(), style(s))
}

func (svg *SVG) Circle(c geometry.Vector2, r float64, s ...string) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X(), c.Y(), r, style(s))
}

func (svg *SVG) Polygon(points []geometry.Vector2, s ...string) {
	svg.printf("<polygon points='%s' %s/>\n", pointList(points), style(s))
}

func (svg *SVG) Polyline(points []geometry.Vector2, s ...string) {
	svg.printf("<polyline points='%s' %s/>\n", pointList(points), style(s))
}

func pointList(points []geometry.Vector2) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%f,%f", p.X(), p.Y())
	}
	return strings.Join(parts, " ")
}

// Frame is one picture of the tree at Snapshot.Time
type Frame struct {
	Snapshot rrt.Snapshot
	Width    float64
	Height   float64
	NodeSize float64

	// optional root to goal waypoints and robot location
	Path  []geometry.Vector2
	Robot *geometry.Vector2
}

// ArrivalColor ramps the hue with arrival time like the cost coloring of the
// planner viewer
func ArrivalColor(arrival float64) colorful.Color {
	hue := math.Mod(120+arrival*12, 360)
	return colorful.Hsv(hue, 1, 0.6)
}

func nodeColor(valid bool, arrival float64) colorful.Color {
	if !valid {
		return invalidColor
	}
	return ArrivalColor(arrival)
}

// WriteFrame draws obstacles first, then edges, nodes and the optional path
// and robot on top
func WriteFrame(w io.Writer, frame Frame) error {
	svg := NewSVG(w)
	svg.Start(frame.Width, frame.Height)
	svg.Rect(0, 0, frame.Width, frame.Height, "fill:white")

	for _, obs := range frame.Snapshot.Obstacles {
		svg.Polygon(obs.Vertices, "fill:"+obstacleColor.Hex(), "fill-opacity:0.8")
		svg.Circle(obs.Centroid, 3, "fill:"+centroidColor.Hex())
	}

	for _, edge := range frame.Snapshot.Edges {
		color := nodeColor(edge.Valid, edge.Arrival)
		svg.Line(edge.From, edge.To, "stroke:"+color.Hex(), "stroke-width:1")
	}

	radius := frame.NodeSize / 2
	if radius <= 0 {
		radius = 2
	}
	for _, node := range frame.Snapshot.Nodes {
		svg.Circle(node.Loc, radius, "fill:"+nodeColor(node.Valid, node.Arrival).Hex())
	}

	if len(frame.Path) > 1 {
		svg.Polyline(frame.Path, "fill:none", "stroke:"+pathColor.Hex(), "stroke-width:3")
	}
	if frame.Robot != nil {
		svg.Circle(*frame.Robot, radius+2, "fill:"+robotColor.Hex())
	}

	svg.End()
	return errors.Wrapf(svg.Err(), "frame t=%v", frame.Snapshot.Time)
}
