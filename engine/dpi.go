package engine

import (
	"runtime"

	"github.com/bloeys/rtshell/logging"
	"github.com/veandco/go-sdl2/sdl"
)

// GetDpiScaling returns the ratio between the DPI of the first display and the no-scaling DPI
// of the platform (e.g. 1.25 for 125% scaling on windows). Returns 1 if the DPI can't be read.
func GetDpiScaling() float32 {

	// Great read on DPI here: https://nlguillemot.wordpress.com/2016/12/11/high-dpi-rendering/

	// Current DPI of the monitor
	_, dpiHorizontal, _, err := sdl.GetDisplayDPI(0)
	if err != nil {
		logging.ErrLog.Printf("Failed to get DPI with error '%s'. Using scaling of 1\n", err.Error())
		return 1
	}

	return DpiScaling(runtime.GOOS, dpiHorizontal)
}

// DpiScaling returns how much a display with dpi is scaled relative to the default DPI of goos
func DpiScaling(goos string, dpi float32) float32 {

	// The no-scaling DPI on different platforms (e.g. when scale=100% on windows)
	var defaultDpi float32 = 96
	if goos == "darwin" {
		defaultDpi = 72
	}

	if dpi <= 0 {
		return 1
	}

	return dpi / defaultDpi
}
