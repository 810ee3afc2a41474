package mesh

import (
	"reflect"
	"testing"
)

func TestLayout(t *testing.T) {
	l := Layout{3, 3, 2}
	if got := l.Floats(); got != 8 {
		t.Errorf("Floats: have %d, want 8", got)
	}
	if got := l.Stride(); got != 32 {
		t.Errorf("Stride: have %d, want 32", got)
	}
	if got, want := l.Offsets(), []int{0, 12, 24}; !reflect.DeepEqual(got, want) {
		t.Errorf("Offsets: have %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		layout   Layout
		indices  []uint32
		wantErr  bool
	}{
		{"whole vertices", make([]float32, 9), PositionLayout, nil, false},
		{"partial vertex", make([]float32, 10), PositionLayout, nil, true},
		{"no vertices", nil, PositionLayout, nil, true},
		{"empty layout", make([]float32, 3), Layout{}, nil, true},
		{"too many components", make([]float32, 5), Layout{5}, nil, true},
		{"indices in range", make([]float32, 12), PositionLayout, []uint32{0, 1, 3}, false},
		{"index out of range", make([]float32, 12), PositionLayout, []uint32{0, 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.vertices, tt.layout, tt.indices)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShapes(t *testing.T) {
	v, l := Triangle()
	if err := Validate(v, l, nil); err != nil {
		t.Errorf("triangle: %v", err)
	}
	if n := len(v) / int(l.Floats()); n != 3 {
		t.Errorf("triangle: have %d vertices, want 3", n)
	}

	v, l, idx := Quad()
	if err := Validate(v, l, idx); err != nil {
		t.Errorf("quad: %v", err)
	}
	if len(idx) != 6 {
		t.Errorf("quad: have %d indices, want 6", len(idx))
	}

	v, l = Cube()
	if err := Validate(v, l, nil); err != nil {
		t.Errorf("cube: %v", err)
	}
	if n := len(v) / int(l.Floats()); n != 36 {
		t.Errorf("cube: have %d vertices, want 36", n)
	}
}
