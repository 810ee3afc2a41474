package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/rhino/glfwcontext"
	"github.com/richinsley/rhino/graphics"
	options "github.com/richinsley/rhino/options"
	"github.com/richinsley/rhino/state"
	"github.com/richinsley/rhino/texture"
)

// glInitOnce ensures gl.Init() is called only once.
var glInitOnce sync.Once

// ClearColor is the greenish background every frame starts from.
var ClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

type Renderer struct {
	context    graphics.Window
	options    *options.RhinoOptions
	State      *state.State
	width      int
	height     int
	recordMode bool
	screenshot bool
}

func NewRenderer(opts *options.RhinoOptions, ctx graphics.Window) (*Renderer, error) {
	r := &Renderer{
		context:    ctx,
		options:    opts,
		width:      *opts.Width,
		height:     *opts.Height,
		recordMode: opts.Record != nil && *opts.Record,
		State:      state.New(ctx, mgl32.Vec3{0, 0, 3}),
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	return r, nil
}

// AttachWindow binds the interactive controls of a visible window: cursor
// capture for mouse-look, U to release the cursor, F for fullscreen and F12
// for a screenshot.
func (r *Renderer) AttachWindow(c *glfwcontext.Context) {
	c.SetCursorLocked(true)
	c.SetCursorCallback(r.State.CursorMoved)
	c.SetResizeCallback(func(width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	c.RegisterKeyCallback(graphics.KeyU, func() {
		unlocked := r.State.ToggleMouse()
		c.SetCursorLocked(!unlocked)
	})
	c.RegisterKeyCallback(graphics.KeyF, func() {
		c.SetFullscreen(!c.Fullscreen())
		r.State.Fullscreen = c.Fullscreen()
	})
	c.RegisterKeyCallback(graphics.KeyF12, func() {
		r.screenshot = true
	})
	r.State.Fullscreen = c.Fullscreen()
}

// Aspect is the width/height ratio of the current render target.
func (r *Renderer) Aspect() float32 {
	w, h := r.targetSize()
	if h == 0 {
		return 1
	}
	return float32(w) / float32(h)
}

func (r *Renderer) targetSize() (int, int) {
	if r.recordMode {
		return r.width, r.height
	}
	return r.context.GetFramebufferSize()
}

// LoadTextures loads n textures into units 0..n-1. Paths given on the command
// line are used in order; missing ones fall back to a generated checkerboard.
func (r *Renderer) LoadTextures(n int) ([]*texture.Texture, error) {
	paths := texturePaths(r.options.Textures(), n)
	textures := make([]*texture.Texture, 0, n)
	for unit := 0; unit < n; unit++ {
		var t *texture.Texture
		var err error
		if unit < len(paths) {
			t, err = texture.Load(paths[unit], unit)
		} else {
			t, err = texture.FromImage(fallbackImage(unit), unit)
		}
		if err != nil {
			for _, loaded := range textures {
				loaded.Delete()
			}
			return nil, err
		}
		textures = append(textures, t)
	}
	return textures, nil
}

// texturePaths keeps the first n paths and warns about the rest.
func texturePaths(paths []string, n int) []string {
	if len(paths) > n {
		log.Printf("Warning: scene uses %d textures, ignoring %v", n, paths[n:])
		return paths[:n]
	}
	return paths
}

// RenderFrame clears the current target and draws the scene at time t.
func (r *Renderer) RenderFrame(scene Scene, t float64) {
	w, h := r.targetSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	scene.Render(r, t)
}

// Run drives the interactive loop until the window is asked to close.
func (r *Renderer) Run(scene Scene) error {
	if err := scene.Init(r); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}
	defer scene.Destroy()

	var clock state.Clock
	var frames int64
	for !r.context.ShouldClose() {
		now := r.context.Time()
		dt := clock.Tick(now)
		r.State.UpdateInput(dt)

		r.RenderFrame(scene, now)

		if r.screenshot {
			r.screenshot = false
			w, h := r.context.GetFramebufferSize()
			if path, err := SaveScreenshot(w, h); err != nil {
				log.Printf("Screenshot failed: %v", err)
			} else {
				log.Printf("Saved screenshot %s", path)
			}
		}

		r.context.EndFrame()
		frames++
	}
	log.Printf("exited render loop after %d frames", frames)
	return nil
}
