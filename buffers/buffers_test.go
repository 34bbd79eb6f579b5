package buffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementTypeSizes(t *testing.T) {

	tests := []struct {
		dt        ElementType
		compCount int32
		size      int32
		name      string
	}{
		{dt: DataTypeUint32, compCount: 1, size: 4, name: "uint32"},
		{dt: DataTypeInt32, compCount: 1, size: 4, name: "int32"},
		{dt: DataTypeFloat32, compCount: 1, size: 4, name: "float32"},
		{dt: DataTypeVec2, compCount: 2, size: 8, name: "Vec2"},
		{dt: DataTypeVec3, compCount: 3, size: 12, name: "Vec3"},
		{dt: DataTypeVec4, compCount: 4, size: 16, name: "Vec4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.compCount, tt.dt.CompCount(), tt.name)
		assert.Equal(t, int32(4), tt.dt.CompSize(), tt.name)
		assert.Equal(t, tt.size, tt.dt.Size(), tt.name)
		assert.Equal(t, tt.name, tt.dt.String())
	}

	assert.Equal(t, "Unknown", DataTypeUnknown.String())
	assert.Panics(t, func() { DataTypeUnknown.CompCount() })
}

func TestSetLayout(t *testing.T) {

	vb := VertexBuffer{}
	vb.SetLayout(
		Element{ElementType: DataTypeVec3},
		Element{ElementType: DataTypeVec2},
		Element{ElementType: DataTypeVec4},
	)

	assert.Equal(t, int32(12+8+16), vb.Stride)

	assert.Len(t, vb.layout, 3)
	assert.Equal(t, 0, vb.layout[0].Offset)
	assert.Equal(t, 12, vb.layout[1].Offset)
	assert.Equal(t, 20, vb.layout[2].Offset)

	assert.Equal(t, int32(2), vb.vertexCount(18))
	assert.Equal(t, int32(0), (&VertexBuffer{}).vertexCount(18))
}
