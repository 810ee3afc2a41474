package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
}

// Key is a window-system independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyLeftControl
	KeyU
	KeyF
	KeyF12
)

// InputSource reports the held state of keys. The window implements it; tests
// use a map.
type InputSource interface {
	KeyDown(k Key) bool
}

// Window is a Context that also reports keyboard state.
type Window interface {
	Context
	InputSource
}
