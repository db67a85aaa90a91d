package glutil

import (
	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/glprimitives/internal/shapes"
)

const (
	bytesFloat32 = 4 // a float32 is 4 bytes
	bytesUint32  = 4 // a uint32 is 4 bytes
)

// Attrib describes one float vertex attribute inside an interleaved
// vertex. Size and Offset are counted in floats.
type Attrib struct {
	Location uint32
	Size     int32
	Offset   int
}

// Position is a lone x,y,z attribute at location 0.
var Position = Attrib{Location: 0, Size: shapes.PositionSize, Offset: 0}

// VertexArray owns a VAO and the buffers bound to it.
type VertexArray struct {
	VAO uint32
	VBO uint32
	IBO uint32 // 0 unless indexed
}

// NewVertexArray uploads data into a new VBO and records the attribute
// layout in a new VAO. stride is the number of floats per vertex.
// Nothing is left bound on return.
func NewVertexArray(data []float32, stride int, attribs ...Attrib) *VertexArray {
	return newVertexArray(data, nil, stride, attribs)
}

// NewIndexedVertexArray is NewVertexArray with an element buffer.
func NewIndexedVertexArray(data []float32, indices []uint32, stride int, attribs ...Attrib) *VertexArray {
	return newVertexArray(data, indices, stride, attribs)
}

func newVertexArray(data []float32, indices []uint32, stride int, attribs []Attrib) *VertexArray {

	va := &VertexArray{}

	gl.GenVertexArrays(1, &va.VAO)
	gl.GenBuffers(1, &va.VBO) // for vertex buffer

	gl.BindVertexArray(va.VAO)

	// copy vertex data to VBO
	gl.BindBuffer(gl.ARRAY_BUFFER, va.VBO)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*bytesFloat32, gl.Ptr(data), gl.STATIC_DRAW)
	}

	// element buffer binding is part of the VAO state, keep it bound
	if len(indices) > 0 {
		gl.GenBuffers(1, &va.IBO) // for index buffer
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.IBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*bytesUint32, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	for _, a := range attribs {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, int32(stride*bytesFloat32), gl.PtrOffset(a.Offset*bytesFloat32))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return va

}

// Upload replaces the contents of the vertex buffer.
func (va *VertexArray) Upload(data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, va.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*bytesFloat32, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw binds the VAO and draws count vertices starting at first.
func (va *VertexArray) Draw(topology shapes.Topology, first, count int) {
	gl.BindVertexArray(va.VAO)
	gl.DrawArrays(mode(topology), int32(first), int32(count))
	gl.BindVertexArray(0)
}

// DrawIndexed binds the VAO and draws count indices as triangles.
func (va *VertexArray) DrawIndexed(count int) {
	gl.BindVertexArray(va.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// DrawShape uploads s and draws it.
func (va *VertexArray) DrawShape(s shapes.Shape) {
	va.Upload(s.Positions)
	va.Draw(s.Topology, 0, s.Count())
}

// Delete frees the VAO and its buffers.
func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.VAO)
	gl.DeleteBuffers(1, &va.VBO)
	if va.IBO != 0 {
		gl.DeleteBuffers(1, &va.IBO)
	}
}

func mode(t shapes.Topology) uint32 {
	switch t {
	case shapes.Points:
		return gl.POINTS
	case shapes.Lines:
		return gl.LINES
	case shapes.Quads:
		return gl.QUADS
	}
	return gl.TRIANGLES
}

// SetMat4 uploads m to the uniform at loc of the program in use.
func SetMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// SetVec3 uploads v to the uniform at loc of the program in use.
func SetVec3(loc int32, v mgl32.Vec3) {
	gl.Uniform3f(loc, v[0], v[1], v[2])
}
