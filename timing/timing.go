// Package timing tracks frame times for the run loop. All functions
// must be called from the render thread.
package timing

import "time"

const fpsSampleWindow = time.Second

var (
	now = time.Now

	startTime  time.Time
	frameStart time.Time
	dt         float32
	frameCount uint64

	fpsWindowStart  time.Time
	fpsWindowFrames int
	avgFps          float32
)

func Init() {

	startTime = now()
	frameStart = startTime
	fpsWindowStart = startTime

	dt = 0
	frameCount = 0
	fpsWindowFrames = 0
	avgFps = 0
}

// Reset restarts the frame clock so the next DT doesn't include work done since the last frame
// (like loading). Elapsed time and the frame count are kept.
func Reset() {

	frameStart = now()
	fpsWindowStart = frameStart

	dt = 0
	fpsWindowFrames = 0
}

// FrameStarted should be called once at the start of every frame.
// It sets DT to the time passed since the previous call (or since Init/Reset on the first frame).
func FrameStarted() {

	t := now()
	dt = float32(t.Sub(frameStart).Seconds())
	frameStart = t

	frameCount++
	fpsWindowFrames++

	elapsed := t.Sub(fpsWindowStart)
	if elapsed >= fpsSampleWindow {
		avgFps = float32(float64(fpsWindowFrames) / elapsed.Seconds())
		fpsWindowFrames = 0
		fpsWindowStart = t
	}
}

// DT returns the duration of the last frame in seconds
func DT() float32 {
	return dt
}

// ElapsedTime returns seconds since Init
func ElapsedTime() float64 {
	return now().Sub(startTime).Seconds()
}

func FrameCount() uint64 {
	return frameCount
}

// GetAvgFPS returns the frame rate averaged over the last full sample window (one second)
func GetAvgFPS() float32 {
	return avgFps
}
