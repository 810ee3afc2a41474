// Package state holds the per-process camera, mouse and window state that the
// input handlers mutate every frame and the renderer reads.
package state

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/rhino/camera"
	"github.com/richinsley/rhino/graphics"
)

// Window is the part of the window the input handler needs.
type Window interface {
	graphics.InputSource
	SetShouldClose(bool)
}

type Mouse struct {
	X, Y     float64
	Unlocked bool
	// false until the first cursor event after a (re)lock
	seen bool
}

type State struct {
	Mouse      Mouse
	Camera     *camera.Camera
	Window     Window
	DeltaTime  float32
	Fullscreen bool
}

func New(w Window, position mgl32.Vec3) *State {
	return &State{
		Camera: camera.New(position),
		Window: w,
	}
}

// CursorMoved turns an absolute cursor position into a camera look. The first
// event after locking only records the position so the view does not jump.
func (s *State) CursorMoved(x, y float64) {
	if s.Mouse.Unlocked {
		s.Mouse.X, s.Mouse.Y = x, y
		return
	}
	if !s.Mouse.seen {
		s.Mouse.X, s.Mouse.Y = x, y
		s.Mouse.seen = true
		return
	}
	dx := x - s.Mouse.X
	// screen y grows downwards
	dy := s.Mouse.Y - y
	s.Mouse.X, s.Mouse.Y = x, y
	s.Camera.Look(float32(dx), float32(dy))
}

// ToggleMouse releases or recaptures the cursor and reports whether it is now
// unlocked.
func (s *State) ToggleMouse() bool {
	s.Mouse.Unlocked = !s.Mouse.Unlocked
	s.Mouse.seen = false
	return s.Mouse.Unlocked
}

// UpdateInput applies held keys for one frame of length dt seconds. Of each
// opposing pair only the first listed key (W, D, Space) applies when both are held.
func (s *State) UpdateInput(dt float32) {
	s.DeltaTime = dt
	w := s.Window
	if w.KeyDown(graphics.KeyEscape) {
		w.SetShouldClose(true)
	}

	cam := s.Camera
	cam.SetSprint(w.KeyDown(graphics.KeyLeftShift))

	if w.KeyDown(graphics.KeyW) {
		cam.Move(camera.Forward, dt)
	} else if w.KeyDown(graphics.KeyS) {
		cam.Move(camera.Backward, dt)
	}

	if w.KeyDown(graphics.KeyD) {
		cam.Move(camera.Right, dt)
	} else if w.KeyDown(graphics.KeyA) {
		cam.Move(camera.Left, dt)
	}

	if w.KeyDown(graphics.KeySpace) {
		cam.Move(camera.Up, dt)
	} else if w.KeyDown(graphics.KeyLeftControl) {
		cam.Move(camera.Down, dt)
	}
}

// Clock measures the time between frames.
type Clock struct {
	last    float64
	started bool
}

// Tick returns the seconds elapsed since the previous Tick, or 0 on the first call.
func (c *Clock) Tick(now float64) float32 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	return float32(dt)
}
