package config

import "imunode-go/types"

// Per-board defaults baked into the image. The IMU poll interval must stay
// well inside the watchdog timeout so a healthy sensor loop keeps the
// countdown fed.
var embeddedConfigs = map[string]types.NodeConfig{
	"host": {
		Watchdog:  types.WatchdogParams{TimeoutSeconds: 3.0, OscillatorHz: 45_000},
		IMU:       types.IMUParams{IntervalMs: 100, Address: 0x28},
		Telemetry: types.TelemetryParams{Degrees: true, WithAccel: true},
	},
	"nucleo-l432kc": {
		Watchdog:  types.WatchdogParams{TimeoutSeconds: 1.4, OscillatorHz: 45_000},
		IMU:       types.IMUParams{IntervalMs: 100, Address: 0x28},
		Telemetry: types.TelemetryParams{Degrees: true, WithAccel: true},
	},
	"pico": {
		Watchdog:  types.WatchdogParams{TimeoutSeconds: 3.0, OscillatorHz: 45_000},
		IMU:       types.IMUParams{IntervalMs: 100, Address: 0x28},
		Telemetry: types.TelemetryParams{Degrees: true, WithAccel: false},
	},
}
