package shaders

import (
	"fmt"
	"strings"

	"github.com/bloeys/rtshell/logging"
	"github.com/go-gl/gl/v3.3-core/gl"
)

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// Link links the program and deletes the attached shaders, which are no longer needed after linking.
//
// The program info log is always logged. On failure an error wrapping ErrLink is returned,
// but the program is kept so the caller can decide whether to continue with it.
func (sp *ShaderProgram) Link() error {

	gl.LinkProgram(sp.Id)

	if sp.VertShaderId != 0 {
		gl.DeleteShader(sp.VertShaderId)
	}

	if sp.FragShaderId != 0 {
		gl.DeleteShader(sp.FragShaderId)
	}

	if sp.GeomShaderId != 0 {
		gl.DeleteShader(sp.GeomShaderId)
	}

	infoLog := getProgramInfoLog(sp.Id)
	logging.InfoLog.Printf("Link log of shader program with id %d: '%s'\n", sp.Id, infoLog)

	var linkedSuccessfully int32
	gl.GetProgramiv(sp.Id, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	logging.ErrLog.Println("Linking of shader program with id ", sp.Id, " failed. Err: ", infoLog)
	return fmt.Errorf("%w: %s", ErrLink, infoLog)
}

func (s *ShaderProgram) Bind() {
	gl.UseProgram(s.Id)
}

func (s *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

func (s *ShaderProgram) Delete() {

	if s.Id == 0 {
		return
	}

	gl.DeleteProgram(s.Id)
	s.Id = 0
}

func getProgramInfoLog(progId uint32) string {

	var logLength int32
	gl.GetProgramiv(progId, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetProgramInfoLog(progId, logLength, nil, log)

	return gl.GoStr(log)
}
