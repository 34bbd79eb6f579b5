// Package config holds the startup settings of the shell. Defaults
// reproduce the original fixed window, context, camera and shader setup,
// and any of them can be overridden from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "rt.yaml"

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	GL        GLConfig        `yaml:"gl"`
	Shaders   ShadersConfig   `yaml:"shaders"`
	Camera    CameraConfig    `yaml:"camera"`
	Profiling ProfilingConfig `yaml:"profiling"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`

	// ScaleWithDpi multiplies width and height by the display's DPI scaling factor
	ScaleWithDpi bool `yaml:"scale_with_dpi"`
}

type GLConfig struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

type ShadersConfig struct {
	VertexPath   string `yaml:"vertex_path"`
	FragmentPath string `yaml:"fragment_path"`

	// CombinedPath, if set, is used instead of VertexPath and FragmentPath.
	// The file has '//shader:vertex' and '//shader:fragment' sections.
	CombinedPath string `yaml:"combined_path"`

	CamPosUniform string `yaml:"cam_pos_uniform"`

	// Strict makes compile and link errors fatal instead of only logged
	Strict bool `yaml:"strict"`
}

type CameraConfig struct {
	StartPos    [3]float32 `yaml:"start_pos"`
	RotSpeedDeg float32    `yaml:"rot_speed_deg"`

	// LegacyRotateZ keeps the old roll behavior, which rotated around X
	LegacyRotateZ bool `yaml:"legacy_rotate_z"`
}

type ProfilingConfig struct {
	CPUProfile  string `yaml:"cpu_profile"`
	HeapProfile string `yaml:"heap_profile"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "RT",
			Width:     1280,
			Height:    720,
			Resizable: true,
			VSync:     true,
		},
		GL: GLConfig{
			Major: 3,
			Minor: 3,
		},
		Shaders: ShadersConfig{
			VertexPath:    "./res/shaders/raytracing.vert",
			FragmentPath:  "./res/shaders/raytracing.frag",
			CamPosUniform: "camPos",
		},
		Camera: CameraConfig{
			StartPos:    [3]float32{0, 1, -8},
			RotSpeedDeg: 60,
		},
	}
}

// Load reads the YAML file at path on top of the defaults and validates the result
func Load(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	return Parse(data)
}

// LoadOptional is like Load but returns the defaults if the file doesn't exist
func LoadOptional(path string) (Config, error) {

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse decodes YAML data on top of the defaults and validates the result
func Parse(data []byte) (Config, error) {

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	// Core profiles only exist from 3.2 onwards
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 2) {
		return fmt.Errorf("unsupported OpenGL core version %d.%d. Minimum is 3.2", c.GL.Major, c.GL.Minor)
	}

	if c.Shaders.CombinedPath == "" && (c.Shaders.VertexPath == "" || c.Shaders.FragmentPath == "") {
		return errors.New("both shaders.vertex_path and shaders.fragment_path must be set when shaders.combined_path is empty")
	}

	if c.Shaders.CamPosUniform == "" {
		return errors.New("shaders.cam_pos_uniform must not be empty")
	}

	return nil
}
