package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/winterbloom/t-obstacles/geometry"
)

func TestWorkspaceContains(t *testing.T) {
	ws := Workspace(400, 300)

	assert.Equal(t, 400.0, ws.Width())
	assert.Equal(t, 300.0, ws.Height())

	assert.True(t, ws.Contains(geometry.Vec2(0, 0)))
	assert.True(t, ws.Contains(geometry.Vec2(400, 300)))
	assert.True(t, ws.Contains(geometry.Vec2(123, 45)))
	assert.False(t, ws.Contains(geometry.Vec2(-0.001, 10)))
	assert.False(t, ws.Contains(geometry.Vec2(10, 300.5)))
}

func TestOverlapsAndInflate(t *testing.T) {
	a := Around(geometry.Vec2(0, 0), geometry.Vec2(10, 10))
	b := Around(geometry.Vec2(10, 10), geometry.Vec2(20, 20))
	c := Around(geometry.Vec2(11, 11), geometry.Vec2(20, 20))

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
	assert.True(t, a.Inflate(1).Overlaps(c))

	inflated := a.Inflate(2)
	assert.Equal(t, geometry.Vec2(-2, -2), inflated.Min)
	assert.Equal(t, geometry.Vec2(12, 12), inflated.Max)
}
