package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	graphics "github.com/richinsley/rhino/graphics"
	options "github.com/richinsley/rhino/options"
)

// Context wraps a GLFW window and its GL context.
type Context struct {
	window *glfw.Window
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
	// Called with the new framebuffer size after a resize.
	resizeCallback func(width, height int)
	cursorCallback func(x, y float64)

	fullscreen bool
	// windowed geometry remembered while fullscreen
	winX, winY, winW, winH int
}

// keyMap translates the portable key set into GLFW keys.
var keyMap = map[graphics.Key]glfw.Key{
	graphics.KeyEscape:      glfw.KeyEscape,
	graphics.KeyW:           glfw.KeyW,
	graphics.KeyA:           glfw.KeyA,
	graphics.KeyS:           glfw.KeyS,
	graphics.KeyD:           glfw.KeyD,
	graphics.KeySpace:       glfw.KeySpace,
	graphics.KeyLeftShift:   glfw.KeyLeftShift,
	graphics.KeyLeftControl: glfw.KeyLeftControl,
	graphics.KeyU:           glfw.KeyU,
	graphics.KeyF:           glfw.KeyF,
	graphics.KeyF12:         glfw.KeyF12,
}

// New creates and initializes a new GLFW window and returns a Context object.
func New(options *options.RhinoOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	var monitor *glfw.Monitor
	fullscreen := visible && options.Fullscreen != nil && *options.Fullscreen
	if fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, *options.Title, monitor, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
		fullscreen:   fullscreen,
		winW:         *options.Width,
		winH:         *options.Height,
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key graphics.Key, f func()) {
	gk, ok := keyMap[key]
	if !ok {
		log.Printf("Warning: key %d has no GLFW mapping, callback ignored", key)
		return
	}
	c.keyCallbacks[gk] = f
}

// SetResizeCallback registers the function run after the framebuffer has been resized.
func (c *Context) SetResizeCallback(f func(width, height int)) {
	c.resizeCallback = f
}

// SetCursorCallback registers the function that receives cursor movement.
func (c *Context) SetCursorCallback(f func(x, y float64)) {
	c.cursorCallback = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// quick escape
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	log.Printf("window resized to %dx%d", width, height)
	if c.resizeCallback != nil {
		c.resizeCallback(width, height)
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	if c.cursorCallback != nil {
		c.cursorCallback(x, y)
	}
}

// KeyDown implements graphics.InputSource.
func (c *Context) KeyDown(k graphics.Key) bool {
	gk, ok := keyMap[k]
	if !ok || c.window == nil {
		return false
	}
	return c.window.GetKey(gk) == glfw.Press
}

// SetCursorLocked hides and captures the cursor for mouse-look, or releases it.
func (c *Context) SetCursorLocked(locked bool) {
	if locked {
		c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		c.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// CursorPos returns the cursor position in screen coordinates.
func (c *Context) CursorPos() (float64, float64) {
	return c.window.GetCursorPos()
}

// Fullscreen reports whether the window currently covers the primary monitor.
func (c *Context) Fullscreen() bool {
	return c.fullscreen
}

// SetFullscreen moves the window onto the primary monitor at its current video
// mode, or back to the windowed geometry it had before.
func (c *Context) SetFullscreen(fullscreen bool) {
	if fullscreen == c.fullscreen {
		return
	}
	if fullscreen {
		c.winX, c.winY = c.window.GetPos()
		c.winW, c.winH = c.window.GetSize()
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		c.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		c.window.SetMonitor(nil, c.winX, c.winY, c.winW, c.winH, 0)
	}
	c.fullscreen = fullscreen
	log.Printf("Fullscreen: %v", fullscreen)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
