//go:build stm32

package platform

import (
	"machine"

	"imunode-go/drivers/bno055"
	"imunode-go/drivers/iwdg"
	"imunode-go/services/imu"
)

// Nucleo-L432KC: IMU on I2C0, console on the ST-Link virtual COM port. The
// IWDG runs from the ~45 kHz LSI oscillator.
func setup() (Deps, error) {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
		return Deps{}, err
	}

	dev := bno055.New(i2c)
	if err := dev.Configure(); err != nil {
		return Deps{}, err
	}

	return Deps{
		Countdown:    iwdg.NewSTM32(),
		OscillatorHz: 45_000,
		Source:       imu.NewDeviceSource(&dev),
		Console:      machine.Serial,
		Board:        "nucleo-l432kc",
	}, nil
}
