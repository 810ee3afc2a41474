package renderer

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/rhino/camera"
)

func TestTexturePaths(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		n     int
		want  []string
	}{
		{"none", nil, 2, nil},
		{"fewer", []string{"a.png"}, 2, []string{"a.png"}},
		{"exact", []string{"a.png", "b.png"}, 2, []string{"a.png", "b.png"}},
		{"extra dropped", []string{"a.png", "b.png", "c.png"}, 2, []string{"a.png", "b.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if have := texturePaths(tt.paths, tt.n); !reflect.DeepEqual(have, tt.want) {
				t.Errorf("have %v, want %v", have, tt.want)
			}
		})
	}
}

func TestFixedViewMatchesCameraProjection(t *testing.T) {
	aspect := float32(4) / 3
	want := camera.New(mgl32.Vec3{}).Projection(aspect)
	if have := perspective(aspect); !have.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("have %v, want %v", have, want)
	}
}
