package meshes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenQuadVertices(t *testing.T) {

	const floatsPerVertex = 3
	assert.Len(t, ScreenQuadVertices, 6*floatsPerVertex)

	// Every vertex is a corner of clip space at z=0
	for i := 0; i < len(ScreenQuadVertices); i += floatsPerVertex {

		x, y, z := ScreenQuadVertices[i], ScreenQuadVertices[i+1], ScreenQuadVertices[i+2]
		assert.Contains(t, []float32{-1, 1}, x)
		assert.Contains(t, []float32{-1, 1}, y)
		assert.Zero(t, z)
	}

	// Both triangles have counter-clockwise winding and together cover the whole 2x2 square
	var totalArea float32
	for tri := 0; tri < 2; tri++ {

		v := ScreenQuadVertices[tri*9 : tri*9+9]
		signedArea := ((v[3]-v[0])*(v[7]-v[1]) - (v[6]-v[0])*(v[4]-v[1])) / 2
		assert.Greater(t, signedArea, float32(0), "triangle %d", tri)
		totalArea += signedArea
	}

	assert.Equal(t, float32(4), totalArea)
}

func TestEmptyMesh(t *testing.T) {

	// A zero mesh has nothing to draw and nothing to free
	m := Mesh{}
	assert.Zero(t, m.VertexCount())
	assert.NotPanics(t, m.Delete)
}
