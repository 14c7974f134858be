package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winterbloom/t-obstacles/geometry"
	"github.com/winterbloom/t-obstacles/rrt"
)

func testFrame() Frame {
	robot := geometry.Vec2(15, 20)
	return Frame{
		Snapshot: rrt.Snapshot{
			Time: 1,
			Nodes: []rrt.NodeState{
				{ID: 0, Loc: geometry.Vec2(0, 0), Valid: true},
				{ID: 1, Loc: geometry.Vec2(30, 40), Valid: true, Arrival: 2.5},
				{ID: 2, Loc: geometry.Vec2(30, 100), Valid: false, Arrival: 5.5},
			},
			Edges: []rrt.EdgeState{
				{Start: 0, End: 1, From: geometry.Vec2(0, 0), To: geometry.Vec2(30, 40), Valid: true, Arrival: 2.5},
				{Start: 1, End: 2, From: geometry.Vec2(30, 40), To: geometry.Vec2(30, 100), Valid: false, Arrival: 5.5},
			},
			Obstacles: []rrt.ObstacleState{{
				Vertices: []geometry.Vector2{geometry.Vec2(50, 50), geometry.Vec2(60, 50), geometry.Vec2(60, 60)},
				Centroid: geometry.Vec2(56.666, 53.333),
			}},
		},
		Width:    200,
		Height:   150,
		NodeSize: 7,
		Path:     []geometry.Vector2{geometry.Vec2(0, 0), geometry.Vec2(30, 40)},
		Robot:    &robot,
	}
}

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, testFrame()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, `viewBox="0 0 200.000000 150.000000"`)

	assert.Equal(t, 1, strings.Count(out, "<polygon"))
	assert.Equal(t, 2, strings.Count(out, "<line"))
	assert.Equal(t, 1, strings.Count(out, "<polyline"))
	// three nodes, one centroid and the robot
	assert.Equal(t, 5, strings.Count(out, "<circle"))

	assert.Contains(t, out, "stroke:"+invalidColor.Hex())
	assert.Contains(t, out, "fill:"+ArrivalColor(2.5).Hex())
	assert.Contains(t, out, "fill:"+obstacleColor.Hex())
}

func TestWriteFrameWithoutExtras(t *testing.T) {
	frame := testFrame()
	frame.Path = nil
	frame.Robot = nil

	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, frame))
	assert.NotContains(t, buf.String(), "<polyline")
	assert.Equal(t, 4, strings.Count(buf.String(), "<circle"))
}

func TestArrivalColor(t *testing.T) {
	h, _, _ := ArrivalColor(0).Hsv()
	assert.InDelta(t, 120, h, 1e-6)

	h, _, _ = ArrivalColor(30).Hsv()
	assert.InDelta(t, 120, h, 1e-6)

	assert.NotEqual(t, ArrivalColor(1).Hex(), ArrivalColor(5).Hex())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteFrameReportsWriteError(t *testing.T) {
	err := WriteFrame(failingWriter{}, testFrame())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
