package renderer

import (
	"github.com/bloeys/rtshell/buffers"
	"github.com/bloeys/rtshell/materials"
)

type Render interface {
	DrawVertexArray(mat *materials.Material, vao *buffers.VertexArray, firstElement int32, count int32)
	FrameEnd()
}
