package rend3dgl

import (
	"github.com/bloeys/rtshell/buffers"
	"github.com/bloeys/rtshell/materials"
	"github.com/bloeys/rtshell/renderer"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

type Rend3DGL struct {
	BoundVaoId uint32
	BoundMatId uint32
}

// BindMaterial binds the material unless it is already bound this frame.
// Use it before setting uniforms that the next draw call needs.
func (r *Rend3DGL) BindMaterial(mat *materials.Material) {

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
	}
}

func (r *Rend3DGL) DrawVertexArray(mat *materials.Material, vao *buffers.VertexArray, firstElement int32, elementCount int32) {

	if vao.Id != r.BoundVaoId {
		vao.Bind()
		r.BoundVaoId = vao.Id
	}

	r.BindMaterial(mat)

	gl.DrawArrays(gl.TRIANGLES, firstElement, elementCount)
}

func (r3d *Rend3DGL) FrameEnd() {
	r3d.BoundVaoId = 0
	r3d.BoundMatId = 0
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
