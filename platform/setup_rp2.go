//go:build rp2040

package platform

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"imunode-go/drivers/bno055"
	"imunode-go/drivers/iwdg"
	"imunode-go/services/imu"
)

const rp2040TickHz = 45_000

// Raspberry Pi Pico: IMU on i2c0 default pins, console on uart0. The RP2040
// watchdog counts milliseconds, so the driver converts divider and reload
// back through the same tick rate the selection ran on.
func setup() (Deps, error) {
	console := uartx.UART0
	if err := console.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	}); err != nil {
		return Deps{}, err
	}

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	}); err != nil {
		return Deps{}, err
	}

	dev := bno055.New(i2c)
	if err := dev.Configure(); err != nil {
		return Deps{}, err
	}

	return Deps{
		Countdown:    iwdg.NewRP2040(rp2040TickHz),
		OscillatorHz: rp2040TickHz,
		Source:       imu.NewDeviceSource(&dev),
		Console:      console,
		Board:        "pico",
	}, nil
}
