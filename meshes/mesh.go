package meshes

import (
	"github.com/bloeys/rtshell/buffers"
)

// ScreenQuadVertices are two triangles covering all of clip space ([-1,1] on x and y) at z=0
var ScreenQuadVertices = [...]float32{
	-1, -1, 0,
	1, -1, 0,
	1, 1, 0,

	-1, 1, 0,
	-1, -1, 0,
	1, 1, 0,
}

type Mesh struct {
	Name string
	/*
		Vao has the following shader attribute layout:
			- Loc0: Pos
	*/
	Vao buffers.VertexArray
	Vbo buffers.VertexBuffer
}

// VertexCount returns the number of vertices to pass to a draw call
func (m *Mesh) VertexCount() int32 {
	return m.Vbo.VertexCount
}

// Delete frees the GPU objects of the mesh. It is safe to call more than once.
func (m *Mesh) Delete() {
	m.Vao.Delete()
	m.Vbo.Delete()
}

// NewScreenQuad uploads ScreenQuadVertices once into a static buffer.
// The result is never updated afterwards.
func NewScreenQuad(name string) Mesh {

	vbo := buffers.NewVertexBuffer(buffers.Element{ElementType: buffers.DataTypeVec3})
	vbo.SetData(ScreenQuadVertices[:], buffers.BufUsage_Static_Draw)

	vao := buffers.NewVertexArray()
	vao.AddVertexBuffer(vbo)

	return Mesh{
		Name: name,
		Vao:  vao,
		Vbo:  vbo,
	}
}
