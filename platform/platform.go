// Package platform assembles the board-specific pieces behind a single
// Setup call. Each supported board contributes its own setup file via build
// tags; everything above this package is portable.
package platform

import (
	"io"

	"imunode-go/services/imu"
	"imunode-go/watchdog"
)

// Deps is everything the portable application needs from the board.
type Deps struct {
	Countdown    watchdog.Timer
	OscillatorHz uint32
	Source       imu.Source
	Console      io.Writer
	Board        string
}

// Setup wires up the current board's hardware and returns the handles the
// services run on.
func Setup() (Deps, error) {
	return setup()
}
