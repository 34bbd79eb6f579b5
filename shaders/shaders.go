package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bloeys/rtshell/logging"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var (
	ErrCompile = errors.New("shader compilation failed")
	ErrLink    = errors.New("shader program linking failed")
)

type Shader struct {
	Id   uint32
	Type ShaderType
}

func NewShaderProgram() (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id}, nil
}

// LoadShaderProgramFiles builds a program from a vertex shader file and a fragment shader file.
//
// Failing to read either file returns a zero program and the read error.
//
// Compile and link failures are not fatal: their logs are written and the returned error wraps
// ErrCompile and/or ErrLink, but the program is still returned and usable (it will likely render nothing).
func LoadShaderProgramFiles(vertPath, fragPath string) (ShaderProgram, error) {

	vertSrc, err := os.ReadFile(vertPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read vertex shader. Err: ", err)
		return ShaderProgram{}, err
	}

	fragSrc, err := os.ReadFile(fragPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read fragment shader. Err: ", err)
		return ShaderProgram{}, err
	}

	return LoadShaderProgramSrc(
		ShaderSource{Type: ShaderType_Vertex, Src: vertSrc},
		ShaderSource{Type: ShaderType_Fragment, Src: fragSrc},
	)
}

// LoadShaderProgramSrc compiles every source, attaches them to a new program and links it.
// See LoadShaderProgramFiles for how compile and link failures are reported.
func LoadShaderProgramSrc(sources ...ShaderSource) (ShaderProgram, error) {

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, errors.New("failed to create new shader program. Err: " + err.Error())
	}

	var errs []error
	for i := 0; i < len(sources); i++ {

		shdr, err := compileAndLog(sources[i].Src, sources[i].Type)
		if err != nil {
			errs = append(errs, err)
		}

		if shdr.Id != 0 {
			shdrProg.AttachShader(shdr)
		}
	}

	if err := shdrProg.Link(); err != nil {
		errs = append(errs, err)
	}

	return shdrProg, errors.Join(errs...)
}

func LoadAndCompileCombinedShader(shaderPath string) (ShaderProgram, error) {

	combinedSource, err := os.ReadFile(shaderPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read shader. Err: ", err)
		return ShaderProgram{}, err
	}

	return LoadAndCompileCombinedShaderSrc(combinedSource)
}

// LoadAndCompileCombinedShaderSrc builds a program from a single source that has
// '//shader:vertex', '//shader:fragment' and optionally '//shader:geometry' sections.
//
// A malformed combined source returns a zero program. Compile and link failures
// behave like in LoadShaderProgramFiles.
func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	sources, err := SplitCombinedShaderSrc(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	return LoadShaderProgramSrc(sources...)
}

type ShaderSource struct {
	Type ShaderType
	Src  []byte
}

// SplitCombinedShaderSrc splits a combined shader into its stages.
// A vertex and a fragment stage are required.
func SplitCombinedShaderSrc(shaderSrc []byte) ([]ShaderSource, error) {

	shaderSources := bytes.Split(shaderSrc, []byte("//shader:"))
	if len(shaderSources) < 2 {
		return nil, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	out := make([]ShaderSource, 0, len(shaderSources))
	hasVert, hasFrag := false, false
	for i := 0; i < len(shaderSources); i++ {

		src := shaderSources[i]

		//This can happen when the shader type is at the start of the file
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		var shdrType ShaderType
		if bytes.HasPrefix(src, []byte("vertex")) {
			src = src[6:]
			shdrType = ShaderType_Vertex
			hasVert = true
		} else if bytes.HasPrefix(src, []byte("fragment")) {
			src = src[8:]
			shdrType = ShaderType_Fragment
			hasFrag = true
		} else if bytes.HasPrefix(src, []byte("geometry")) {
			src = src[8:]
			shdrType = ShaderType_Geometry
		} else {
			return nil, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'")
		}

		out = append(out, ShaderSource{Type: shdrType, Src: src})
	}

	if len(out) == 0 {
		return nil, errors.New("no valid shaders found. Please put '//shader:vertex' or '//shader:fragment' or '//shader:geometry' before your shaders")
	}

	if !hasVert {
		return nil, errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !hasFrag {
		return nil, errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return out, nil
}

// compileAndLog always returns the created shader (even if it failed to compile) and always logs its info log
func compileAndLog(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("%w: failed to create OpenGl shader. OpenGl Error=%d", ErrCompile, gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(string(shaderSource) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)

	infoLog := getShaderInfoLog(shaderId)
	logging.InfoLog.Printf("Compile log of %s shader with id %d: '%s'\n", shaderType, shaderId, infoLog)

	shdr := Shader{Id: shaderId, Type: shaderType}

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return shdr, nil
	}

	logging.ErrLog.Println("Compilation of shader with id ", shaderId, " failed. Err: ", infoLog)
	return shdr, fmt.Errorf("%w: %s shader: %s", ErrCompile, shaderType, infoLog)
}

func getShaderInfoLog(shaderId uint32) string {

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	return gl.GoStr(log)
}
