package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Layout lists the component count of each vertex attribute, in location order.
type Layout []int32

// Floats is the number of floats per vertex.
func (l Layout) Floats() int32 {
	var n int32
	for _, c := range l {
		n += c
	}
	return n
}

// Stride is the vertex size in bytes.
func (l Layout) Stride() int32 {
	return l.Floats() * floatSize
}

// Offsets returns the byte offset of every attribute within a vertex.
func (l Layout) Offsets() []int {
	offs := make([]int, len(l))
	off := 0
	for i, c := range l {
		offs[i] = off
		off += int(c) * floatSize
	}
	return offs
}

// Validate checks that vertices hold whole vertices and that every index
// refers to one of them.
func Validate(vertices []float32, layout Layout, indices []uint32) error {
	if len(layout) == 0 {
		return fmt.Errorf("empty vertex layout")
	}
	for i, c := range layout {
		if c < 1 || c > 4 {
			return fmt.Errorf("attribute %d has %d components, want 1-4", i, c)
		}
	}
	per := int(layout.Floats())
	if len(vertices) == 0 || len(vertices)%per != 0 {
		return fmt.Errorf("%d floats is not a whole number of %d-float vertices", len(vertices), per)
	}
	count := uint32(len(vertices) / per)
	for i, idx := range indices {
		if idx >= count {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, count)
		}
	}
	return nil
}

// Mesh owns a VAO with its vertex buffer and optional element buffer.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// New uploads vertex data, and index data when given, to the GPU.
func New(vertices []float32, layout Layout, indices []uint32) (*Mesh, error) {
	if err := Validate(vertices, layout, indices); err != nil {
		return nil, err
	}
	m := &Mesh{}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.indexed = true
		m.count = int32(len(indices))
	} else {
		m.count = int32(len(vertices)) / layout.Floats()
	}

	stride := layout.Stride()
	for i, off := range layout.Offsets() {
		gl.VertexAttribPointerWithOffset(uint32(i), layout[i], gl.FLOAT, false, stride, uintptr(off))
		gl.EnableVertexAttribArray(uint32(i))
	}

	// the element buffer binding is VAO state and must stay bound
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m, nil
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
