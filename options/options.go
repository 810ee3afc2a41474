package options

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 960
	DefaultTitle  = "Rhino Framework"
)

type RhinoOptions struct {
	Scene        *string
	Title        *string
	Help         *bool
	List         *bool
	Width        *int
	Height       *int
	Fullscreen   *bool
	VertexPath   *string // Optional vertex shader file overriding the scene's built-in source.
	FragmentPath *string // Optional fragment shader file overriding the scene's built-in source.
	TexturePaths *string // Comma separated image paths, assigned to texture units in order.
	// Recording options
	Record     *bool
	Duration   *float64
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
}

// Textures splits the comma separated texture list, dropping empty entries.
func (o *RhinoOptions) Textures() []string {
	if o.TexturePaths == nil || *o.TexturePaths == "" {
		return nil
	}
	var paths []string
	for _, p := range strings.Split(*o.TexturePaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Validate checks the option combinations that cannot be caught by the flag parser.
func (o *RhinoOptions) Validate() error {
	if o.Width == nil || o.Height == nil || *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size")
	}
	vs := o.VertexPath != nil && *o.VertexPath != ""
	fs := o.FragmentPath != nil && *o.FragmentPath != ""
	if vs != fs {
		return fmt.Errorf("-vertex and -fragment must be given together")
	}
	if o.Record != nil && *o.Record {
		if o.FPS == nil || *o.FPS <= 0 {
			return fmt.Errorf("fps must be positive when recording, got %v", deref(o.FPS))
		}
		if o.Duration == nil || *o.Duration <= 0 {
			return fmt.Errorf("duration must be positive when recording")
		}
		if o.OutputFile == nil || *o.OutputFile == "" {
			return fmt.Errorf("an output file is required when recording")
		}
	}
	return nil
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
