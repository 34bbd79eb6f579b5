package engine

import (
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"

	"github.com/bloeys/rtshell/assert"
	"github.com/bloeys/rtshell/input"
	"github.com/bloeys/rtshell/logging"
	"github.com/bloeys/rtshell/timing"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false

	// quitRequested is the only state written off the render thread (by the signal watcher)
	quitRequested atomic.Bool
)

type Window struct {
	SDLWin *sdl.Window
	GlCtx  sdl.GLContext
}

func (w *Window) handleInputs() {

	input.EventLoopStart()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		switch e := event.(type) {

		case *sdl.KeyboardEvent:
			input.HandleKeyboardEvent(e)

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}

			// Held keys get no release event when focus is lost
			if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				input.ClearKeyboardState()
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent(e)
		}
	}
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.Viewport(0, 0, fbWidth, fbHeight)
}

func (w *Window) Show() {
	w.SDLWin.Show()
	w.SDLWin.Raise()
}

// Destroy deletes the OpenGL context and the window. GPU objects created
// with the context must be deleted before this is called.
func (w *Window) Destroy() error {

	if w.GlCtx != nil {
		sdl.GLDeleteContext(w.GlCtx)
		w.GlCtx = nil
	}

	return w.SDLWin.Destroy()
}

// Init prepares SDL to create windows with an OpenGL core context of the given version.
// It locks the calling goroutine to its OS thread, so it must be called from the goroutine
// that will run the game (usually main).
func Init(glMajor, glMinor int) error {

	isInited = true

	runtime.LockOSThread()
	timing.Init()

	quitRequested.Store(false)
	watchSignals()

	return initSDL(glMajor, glMinor)
}

// Terminate shuts SDL down. Windows must be destroyed before this is called.
func Terminate() {
	signal.Reset(os.Interrupt, syscall.SIGTERM)
	sdl.Quit()
}

// watchSignals turns SIGINT and SIGTERM into a normal quit, so that the loop
// exits and the game releases its resources
func watchSignals() {

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		logging.InfoLog.Printf("Received signal '%s'. Quitting\n", sig)
		Quit()
	}()
}

func initSDL(glMajor, glMinor int) error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, glMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, glMinor)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{SDLWin: sdlWin}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	err = initOpenGL()
	if err != nil {
		win.Destroy()
		return nil, err
	}

	logging.InfoLog.Printf("Created window '%s' (%dx%d). OpenGL version: %s\n", title, width, height, gl.GoStr(gl.GetString(gl.VERSION)))

	// Get rid of the blinding white startup screen (unfortunately there is still one frame of white)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	sdlWin.GLSwap()

	return win, err
}

func initOpenGL() error {

	if err := gl.Init(); err != nil {
		return err
	}

	// Only a full screen quad is drawn, so depth testing and culling are not needed
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.ClearColor(0, 0, 0, 1)

	return nil
}

func SetVSync(enabled bool) {

	var err error
	if enabled {
		err = sdl.GLSetSwapInterval(1)
	} else {
		err = sdl.GLSetSwapInterval(0)
	}

	if err != nil {
		logging.WarnLog.Printf("Failed to set vsync to '%v'. Err: %v\n", enabled, err)
	}
}
