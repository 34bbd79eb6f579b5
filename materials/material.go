package materials

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/rtshell/logging"
	"github.com/bloeys/rtshell/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var (
	lastMatId uint32
)

type Material struct {
	Id         uint32
	Name       string
	ShaderProg shaders.ShaderProgram

	UnifLocs map[string]int32
}

func (m *Material) Bind() {
	m.ShaderProg.Bind()
}

func (m *Material) UnBind() {
	m.ShaderProg.UnBind()
}

// GetUnifLoc returns the location of the uniform, querying OpenGL only the first time a name is used.
//
// A uniform that doesn't exist (or was optimized away) gets location -1, which is logged once.
// Setting a uniform at -1 is silently ignored by OpenGL.
func (m *Material) GetUnifLoc(uniformName string) int32 {

	loc, ok := m.UnifLocs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(m.ShaderProg.Id, name)
	if loc == -1 {
		logging.WarnLog.Printf("Uniform '%s' doesn't exist on material '%s'\n", uniformName, m.Name)
	}

	m.UnifLocs[uniformName] = loc
	return loc
}

// SetUnifVec3 writes to a location resolved with GetUnifLoc.
// It writes to the currently bound program, so the material must be bound first.
func SetUnifVec3(unifLoc int32, vec3 *gglm.Vec3) {
	gl.Uniform3fv(unifLoc, 1, &vec3.Data[0])
}

func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

func NewMaterial(matName string, shdrProg shaders.ShaderProgram) Material {
	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
		UnifLocs:   make(map[string]int32),
	}
}
