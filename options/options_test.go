package options

import "testing"

func newOptions() *RhinoOptions {
	scene, title := "triangle", DefaultTitle
	width, height := DefaultWidth, DefaultHeight
	vs, fs, tex := "", "", ""
	record := false
	duration, fps, out := 5.0, 60, "out.mp4"
	return &RhinoOptions{
		Scene:        &scene,
		Title:        &title,
		Width:        &width,
		Height:       &height,
		VertexPath:   &vs,
		FragmentPath: &fs,
		TexturePaths: &tex,
		Record:       &record,
		Duration:     &duration,
		FPS:          &fps,
		OutputFile:   &out,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *RhinoOptions)
		wantErr bool
	}{
		{"defaults", func(o *RhinoOptions) {}, false},
		{"zero width", func(o *RhinoOptions) { *o.Width = 0 }, true},
		{"vertex without fragment", func(o *RhinoOptions) { *o.VertexPath = "a.vert" }, true},
		{"both shaders", func(o *RhinoOptions) { *o.VertexPath = "a.vert"; *o.FragmentPath = "a.frag" }, false},
		{"record bad fps", func(o *RhinoOptions) { *o.Record = true; *o.FPS = 0 }, true},
		{"record no output", func(o *RhinoOptions) { *o.Record = true; *o.OutputFile = "" }, true},
		{"record ok", func(o *RhinoOptions) { *o.Record = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOptions()
			tt.mutate(o)
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTextures(t *testing.T) {
	o := newOptions()
	if got := o.Textures(); got != nil {
		t.Errorf("empty texture list: have %v, want nil", got)
	}
	*o.TexturePaths = "wall.jpg, ,face.png,"
	got := o.Textures()
	if len(got) != 2 || got[0] != "wall.jpg" || got[1] != "face.png" {
		t.Errorf("have %v, want [wall.jpg face.png]", got)
	}
}
