package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tol = 1e-4

func vecEq(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, tol)
}

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})
	if !vecEq(c.Front, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("front: have %v, want {0 0 -1}", c.Front)
	}
	if !vecEq(c.Right, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("right: have %v, want {1 0 0}", c.Right)
	}
	if !vecEq(c.Up, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("up: have %v, want {0 1 0}", c.Up)
	}
}

func TestPitchClamp(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Look(0, 100000)
	if c.Pitch != PitchLimit {
		t.Errorf("pitch: have %v, want %v", c.Pitch, PitchLimit)
	}
	c.Look(0, -200000)
	if c.Pitch != -PitchLimit {
		t.Errorf("pitch: have %v, want %v", c.Pitch, -PitchLimit)
	}
	if c.Front.Y > 0 {
		t.Errorf("looking down should give negative front.y, have %v", c.Front.Y)
	}
}

func TestLookSensitivity(t *testing.T) {
	c := New(mgl32.Vec3{})
	// half a turn at 0.004 rad/pixel
	px := float32(3.14159265 / Sensitivity)
	c.Look(px, 0)
	if !vecEq(c.Front, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("front after half turn: have %v, want {0 0 1}", c.Front)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -3}},
		{Backward, mgl32.Vec3{0, 0, 3}},
		{Right, mgl32.Vec3{3, 0, 0}},
		{Left, mgl32.Vec3{-3, 0, 0}},
		{Up, mgl32.Vec3{0, 3, 0}},
		{Down, mgl32.Vec3{0, -3, 0}},
	}
	for _, tt := range tests {
		c := New(mgl32.Vec3{})
		c.Move(tt.dir, 1)
		if !vecEq(c.Position, tt.want) {
			t.Errorf("direction %d: have %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestVerticalMoveIgnoresPitch(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Look(0, 5000)
	c.Move(Up, 1)
	if !vecEq(c.Position, mgl32.Vec3{0, 3, 0}) {
		t.Errorf("have %v, want {0 3 0}", c.Position)
	}
}

func TestSprint(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.SetSprint(true)
	c.Move(Forward, 0.5)
	if !vecEq(c.Position, mgl32.Vec3{0, 0, -3}) {
		t.Errorf("sprint: have %v, want {0 0 -3}", c.Position)
	}
	c.SetSprint(false)
	if c.Speed != MoveSpeed {
		t.Errorf("speed: have %v, want %v", c.Speed, MoveSpeed)
	}
}

func TestViewTransformsPositionToOrigin(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3})
	p := c.View().Mul4x1(c.Position.Vec4(1)).Vec3()
	if !vecEq(p, mgl32.Vec3{}) {
		t.Errorf("camera position in view space: have %v, want origin", p)
	}
}

func TestProjection(t *testing.T) {
	c := New(mgl32.Vec3{})
	aspect := float32(1280) / 960
	want := mgl32.Perspective(mgl32.DegToRad(60), aspect, 0.1, 100)
	if have := c.Projection(aspect); !have.ApproxEqualThreshold(want, tol) {
		t.Errorf("projection: have %v, want %v", have, want)
	}
}
