//go:build !(stm32 || rp2040 || rp2350)

package platform

import (
	"os"

	"imunode-go/drivers/iwdg"
	"imunode-go/services/imu"
)

// Hosted builds run against simulated hardware so the full service stack can
// be exercised on a laptop.
func setup() (Deps, error) {
	return Deps{
		Countdown:    iwdg.NewSim(),
		OscillatorHz: 45_000,
		Source:       imu.NewSimSource(),
		Console:      os.Stdout,
		Board:        "host",
	}, nil
}
