package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/rtshell/camera"
	"github.com/bloeys/rtshell/config"
	"github.com/bloeys/rtshell/engine"
	"github.com/bloeys/rtshell/input"
	"github.com/bloeys/rtshell/logging"
	"github.com/bloeys/rtshell/materials"
	"github.com/bloeys/rtshell/meshes"
	"github.com/bloeys/rtshell/renderer/rend3dgl"
	"github.com/bloeys/rtshell/shaders"
	"github.com/bloeys/rtshell/timing"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// Game owns all the state of the shell: the window, the GPU objects and the camera.
// Only one should exist per process.
type Game struct {
	Cfg  config.Config
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL

	Cam camera.Orbit

	RtMat     materials.Material
	CamPosLoc int32
	Quad      meshes.Mesh

	lastTitleUpdateTime float64
}

// titleUpdateInterval is in seconds
const titleUpdateInterval = 1

func main() {

	configPath := flag.String("config", config.DefaultConfigPath, "path to a yaml config file. Defaults are used if the default file doesn't exist")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	//Init engine
	err = engine.Init(cfg.GL.Major, cfg.GL.Minor)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}
	defer engine.Terminate()

	//Create window
	winWidth, winHeight := cfg.Window.Width, cfg.Window.Height
	if cfg.Window.ScaleWithDpi {
		dpiScaling := engine.GetDpiScaling()
		winWidth = int32(float32(winWidth) * dpiScaling)
		winHeight = int32(float32(winHeight) * dpiScaling)
	}

	winFlags := engine.WindowFlags_HIDDEN | engine.WindowFlags_INPUT_FOCUS
	if cfg.Window.Resizable {
		winFlags |= engine.WindowFlags_RESIZABLE
	}

	window, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, winWidth, winHeight, winFlags)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err: ", err)
	}
	defer window.Destroy()

	engine.SetVSync(cfg.Window.VSync)

	game := &Game{
		Cfg:  cfg,
		Win:  window,
		Rend: rend3dgl.NewRend3DGL(),
		Cam: camera.NewOrbit(
			gglm.NewVec3(cfg.Camera.StartPos[0], cfg.Camera.StartPos[1], cfg.Camera.StartPos[2]),
			cfg.Camera.RotSpeedDeg,
			cfg.Camera.LegacyRotateZ,
		),
	}

	var stopCPUProfile func()
	if cfg.Profiling.CPUProfile != "" {
		stopCPUProfile = startCPUProfile(cfg.Profiling.CPUProfile)
	}

	engine.Run(game, window, game.Rend)

	if stopCPUProfile != nil {
		stopCPUProfile()
	}

	if cfg.Profiling.HeapProfile != "" {
		writeHeapProfile(cfg.Profiling.HeapProfile)
	}
}

func loadConfig(path string) (config.Config, error) {

	// Only the default path may be missing. An explicitly given file must exist
	if path == config.DefaultConfigPath {
		return config.LoadOptional(path)
	}

	return config.Load(path)
}

// startCPUProfile returns a function that stops the profile and closes its file,
// or nil if profiling could not start
func startCPUProfile(path string) func() {

	pf, err := os.Create(path)
	if err != nil {
		logging.ErrLog.Printf("Creating %s file failed. CPU profiling will not run. Err=%v\n", path, err)
		return nil
	}

	err = pprof.StartCPUProfile(pf)
	if err != nil {
		pf.Close()
		logging.ErrLog.Printf("Starting CPU profile failed. CPU profiling will not run. Err=%v\n", err)
		return nil
	}

	return func() {
		pprof.StopCPUProfile()
		pf.Close()
	}
}

func writeHeapProfile(path string) {

	heapProfile, err := os.Create(path)
	if err != nil {
		logging.ErrLog.Printf("Creating %s file failed. Err=%v\n", path, err)
		return
	}
	defer heapProfile.Close()

	err = pprof.WriteHeapProfile(heapProfile)
	if err != nil {
		logging.ErrLog.Printf("Writing heap profile to %s failed. Err=%v\n", path, err)
	}
}

func (g *Game) Init() {

	g.Win.Show()

	shdrProg, err := g.loadShaderProgram()
	if err != nil {

		// Missing files and bad combined shaders give no program at all, so there is nothing to run
		isCompileOrLinkErr := errors.Is(err, shaders.ErrCompile) || errors.Is(err, shaders.ErrLink)
		if !isCompileOrLinkErr || g.Cfg.Shaders.Strict {
			logging.ErrLog.Fatalln("Failed to load ray tracing shader. Err:", err)
		}

		logging.ErrLog.Println("Ray tracing shader has errors, continuing anyway. Err:", err)
	}

	g.RtMat = materials.NewMaterial("Ray tracing mat", shdrProg)
	g.CamPosLoc = g.RtMat.GetUnifLoc(g.Cfg.Shaders.CamPosUniform)

	g.Quad = meshes.NewScreenQuad("Screen quad")

	logging.InfoLog.Printf("Loaded. Camera starts at %v\n", g.Cam.Pos.Data)
}

func (g *Game) loadShaderProgram() (shaders.ShaderProgram, error) {

	if g.Cfg.Shaders.CombinedPath != "" {
		return shaders.LoadAndCompileCombinedShader(g.Cfg.Shaders.CombinedPath)
	}

	return shaders.LoadShaderProgramFiles(g.Cfg.Shaders.VertexPath, g.Cfg.Shaders.FragmentPath)
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
		return
	}

	g.Cam.Update(input.PollKeyboard(), timing.DT())
}

func (g *Game) Render() {

	gl.Clear(gl.COLOR_BUFFER_BIT)

	g.Rend.BindMaterial(&g.RtMat)
	materials.SetUnifVec3(g.CamPosLoc, &g.Cam.Pos)

	g.Rend.DrawVertexArray(&g.RtMat, &g.Quad.Vao, 0, g.Quad.VertexCount())
}

func (g *Game) FrameEnd() {

	elapsed := timing.ElapsedTime()
	if elapsed-g.lastTitleUpdateTime < titleUpdateInterval {
		return
	}

	g.lastTitleUpdateTime = elapsed
	g.Win.SDLWin.SetTitle(fpsTitle(g.Cfg.Window.Title, timing.GetAvgFPS()))
}

func fpsTitle(title string, fps float32) string {
	return fmt.Sprintf("%s | FPS: %.0f", title, fps)
}

func (g *Game) DeInit() {

	logging.InfoLog.Printf("Rendered %d frames in %.2f seconds\n", timing.FrameCount(), timing.ElapsedTime())

	g.Quad.Delete()
	g.RtMat.Delete()
}
