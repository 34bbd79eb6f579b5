package engine

import (
	"github.com/bloeys/rtshell/renderer"
	"github.com/bloeys/rtshell/timing"
)

// Game is driven by Run. All methods are called on the thread that called Init.
type Game interface {
	// Init is called once before the first frame
	Init()

	// Update is called every frame before Render, after input for the frame was handled
	Update()

	// Render is called every frame after Update. The buffers are swapped after it returns
	Render()

	FrameEnd()

	// DeInit is called once after the last frame, even if the loop exited by a panic
	DeInit()
}

// Run calls Game.Init and then runs the Update/Render loop until Quit is called.
// The window is not destroyed by Run.
func Run(g Game, w *Window, rend renderer.Render) {

	g.Init()
	defer g.DeInit()

	// Loading time must not end up in the first frame's DT
	timing.Reset()

	for !quitRequested.Load() {

		timing.FrameStarted()

		w.handleInputs()
		g.Update()

		// Update might have quit
		if quitRequested.Load() {
			break
		}

		g.Render()
		w.SDLWin.GLSwap()

		g.FrameEnd()
		rend.FrameEnd()
	}
}

// Quit makes Run exit after the current frame. Safe to call from any goroutine.
func Quit() {
	quitRequested.Store(true)
}
