package renderer

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/rhino/camera"
	"github.com/richinsley/rhino/mesh"
	"github.com/richinsley/rhino/shader"
	"github.com/richinsley/rhino/texture"
)

// Scene is one of the demo setups the renderer can draw.
type Scene interface {
	// Init creates the scene's GL resources. The renderer's context is current.
	Init(r *Renderer) error
	// Render draws one frame at time t seconds.
	Render(r *Renderer, t float64)
	Destroy()
}

var scenes = map[string]func() Scene{
	"triangle": func() Scene { return &triangleScene{} },
	"quad":     func() Scene { return &quadScene{} },
	"cube":     func() Scene { return &cubeScene{} },
	"scene":    func() Scene { return &cameraScene{} },
}

// SceneNames lists the registered scenes in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for n := range scenes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func NewScene(name string) (Scene, error) {
	f, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have %v)", name, SceneNames())
	}
	return f(), nil
}

// loadProgram builds the program given on the command line, or the named
// built-in one.
func (r *Renderer) loadProgram(builtin string) (*shader.Program, error) {
	if vs, fs := optString(r.options.VertexPath), optString(r.options.FragmentPath); vs != "" && fs != "" {
		log.Printf("Loading shaders %s and %s", vs, fs)
		return shader.LoadProgram(vs, fs)
	}
	vs, fs, err := shader.Builtin(builtin)
	if err != nil {
		return nil, err
	}
	p, err := shader.NewProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("built-in %s program: %w", builtin, err)
	}
	return p, nil
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var fallbackColors = [][2]color.NRGBA{
	{{230, 230, 230, 255}, {60, 60, 60, 255}},
	{{220, 120, 40, 255}, {40, 90, 200, 255}},
}

func fallbackImage(unit int) *image.NRGBA {
	c := fallbackColors[unit%len(fallbackColors)]
	return texture.Checkerboard(256, 8, c[0], c[1])
}

// ──────────────────────────────── triangle ────────────────────────────────

type triangleScene struct {
	program *shader.Program
	mesh    *mesh.Mesh
}

func (s *triangleScene) Init(r *Renderer) error {
	var err error
	if s.program, err = r.loadProgram("flat"); err != nil {
		return err
	}
	vertices, layout := mesh.Triangle()
	if s.mesh, err = mesh.New(vertices, layout, nil); err != nil {
		s.program.Delete()
		return err
	}
	return nil
}

func (s *triangleScene) Render(r *Renderer, t float64) {
	s.program.Use()
	s.mesh.Draw()
}

func (s *triangleScene) Destroy() {
	s.mesh.Delete()
	s.program.Delete()
}

// ────────────────────────────────── quad ──────────────────────────────────

type quadScene struct {
	program *shader.Program
	mesh    *mesh.Mesh
}

func (s *quadScene) Init(r *Renderer) error {
	var err error
	if s.program, err = r.loadProgram("color"); err != nil {
		return err
	}
	vertices, layout, indices := mesh.Quad()
	if s.mesh, err = mesh.New(vertices, layout, indices); err != nil {
		s.program.Delete()
		return err
	}
	return nil
}

func (s *quadScene) Render(r *Renderer, t float64) {
	s.program.Use()
	s.mesh.Draw()
}

func (s *quadScene) Destroy() {
	s.mesh.Delete()
	s.program.Delete()
}

// ────────────────────────────────── cube ──────────────────────────────────

// texturedScene holds what the cube and camera scenes share.
type texturedScene struct {
	program  *shader.Program
	mesh     *mesh.Mesh
	textures []*texture.Texture
}

func (s *texturedScene) init(r *Renderer) error {
	var err error
	if s.program, err = r.loadProgram("textured"); err != nil {
		return err
	}
	vertices, layout := mesh.Cube()
	if s.mesh, err = mesh.New(vertices, layout, nil); err != nil {
		s.program.Delete()
		return err
	}
	if s.textures, err = r.LoadTextures(2); err != nil {
		s.mesh.Delete()
		s.program.Delete()
		return err
	}
	s.program.Use()
	for _, t := range s.textures {
		s.program.SetInt(fmt.Sprintf("texture%d", t.Unit), int32(t.Unit))
	}
	s.program.SetFloat("mixAmount", 0.2)
	return nil
}

func (s *texturedScene) bind(view, projection mgl32.Mat4) {
	s.program.Use()
	for _, t := range s.textures {
		t.Bind()
	}
	s.program.SetMat4("view", view)
	s.program.SetMat4("projection", projection)
}

func (s *texturedScene) Destroy() {
	for _, t := range s.textures {
		t.Delete()
	}
	s.mesh.Delete()
	s.program.Delete()
}

// perspective is the fly camera's default projection, for scenes with a fixed view.
func perspective(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(camera.FOV), aspect, camera.NearPlane, camera.FarPlane)
}

// cubeScene spins a single cube in front of a fixed view.
type cubeScene struct {
	texturedScene
}

func (s *cubeScene) Init(r *Renderer) error {
	return s.init(r)
}

func (s *cubeScene) Render(r *Renderer, t float64) {
	view := mgl32.Translate3D(0, 0, -3)
	s.bind(view, perspective(r.Aspect()))
	model := mgl32.HomogRotate3D(float32(t)*mgl32.DegToRad(50), mgl32.Vec3{0.5, 1.0, 0.0}.Normalize())
	s.program.SetMat4("model", model)
	s.mesh.Draw()
}

// cameraScene draws a field of cubes seen through the fly camera.
type cameraScene struct {
	texturedScene
}

func (s *cameraScene) Init(r *Renderer) error {
	return s.init(r)
}

func (s *cameraScene) Render(r *Renderer, t float64) {
	cam := r.State.Camera
	s.bind(cam.View(), cam.Projection(r.Aspect()))
	for i, pos := range mesh.CubePositions {
		angle := mgl32.DegToRad(20 * float32(i))
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()))
		s.program.SetMat4("model", model)
		s.mesh.Draw()
	}
}
