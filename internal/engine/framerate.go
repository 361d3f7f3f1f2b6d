package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-walk/internal/core"
)

// Process-wide frame-rate counters. Only the loop goroutine touches them.
var (
	framesCounted  int
	totalFrameTime time.Duration
	frameRate      int
)

// frameRateLocation is where the overlay is drawn, in world pixels.
var frameRateLocation = core.Point{X: 400, Y: 100}

// updateFrameRate records one draw pass and returns the most recent
// frames-per-second figure.
func updateFrameRate(frameTime time.Duration) int {
	framesCounted++
	totalFrameTime += frameTime
	if totalFrameTime > time.Second {
		frameRate = framesCounted
		totalFrameTime = 0
		framesCounted = 0
	}
	return frameRate
}

func resetFrameRate() {
	framesCounted, totalFrameTime, frameRate = 0, 0, 0
}

func drawFrameRate(r Renderer, frameTime time.Duration) error {
	rate := updateFrameRate(frameTime)
	return r.DrawText(fmt.Sprintf("Frame Rate %d", rate), frameRateLocation)
}
