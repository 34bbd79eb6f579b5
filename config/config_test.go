package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {

	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "RT", cfg.Window.Title)
	assert.EqualValues(t, 1280, cfg.Window.Width)
	assert.EqualValues(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, 3, cfg.GL.Major)
	assert.Equal(t, 3, cfg.GL.Minor)
	assert.Equal(t, [3]float32{0, 1, -8}, cfg.Camera.StartPos)
	assert.Equal(t, "camPos", cfg.Shaders.CamPosUniform)
	assert.False(t, cfg.Camera.LegacyRotateZ)
}

func TestParseOverridesDefaults(t *testing.T) {

	data := []byte(`
window:
  title: Test
  width: 640
camera:
  start_pos: [1, 2, 3]
  legacy_rotate_z: true
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "Test", cfg.Window.Title)
	assert.EqualValues(t, 640, cfg.Window.Width)
	assert.EqualValues(t, 720, cfg.Window.Height, "unset fields keep their defaults")
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.StartPos)
	assert.True(t, cfg.Camera.LegacyRotateZ)
	assert.EqualValues(t, 60, cfg.Camera.RotSpeedDeg)
}

func TestParseErrors(t *testing.T) {

	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: "window: [1, 2"},
		{name: "zero width", data: "window:\n  width: 0"},
		{name: "old gl", data: "gl:\n  major: 2\n  minor: 1"},
		{name: "gl 3.1", data: "gl:\n  major: 3\n  minor: 1"},
		{name: "missing fragment shader", data: "shaders:\n  fragment_path: ''"},
		{name: "empty uniform", data: "shaders:\n  cam_pos_uniform: ''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestCombinedPathAllowsEmptyStages(t *testing.T) {

	cfg, err := Parse([]byte("shaders:\n  combined_path: ./rt.glsl\n  vertex_path: ''\n  fragment_path: ''"))
	require.NoError(t, err)
	assert.Equal(t, "./rt.glsl", cfg.Shaders.CombinedPath)
}

func TestLoad(t *testing.T) {

	path := filepath.Join(t.TempDir(), "rt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gl:\n  major: 4\n  minor: 1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.GL.Major)
	assert.Equal(t, 1, cfg.GL.Minor)
}

func TestLoadMissingFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(path)
	assert.Error(t, err)

	cfg, err := LoadOptional(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
