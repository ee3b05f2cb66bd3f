package types

// ---- Node configuration ----

// IMUParams configures the polling service.
type IMUParams struct {
	IntervalMs uint32 `json:"interval_ms"` // poll cadence; must stay well under the watchdog timeout
	Address    uint16 `json:"address,omitempty"`
}

// TelemetryParams configures the serial printer.
type TelemetryParams struct {
	Degrees   bool `json:"degrees"`    // print euler angles in degrees (vs raw deci-degrees)
	WithAccel bool `json:"with_accel"` // append linear acceleration columns
}

// NodeConfig is the full embedded configuration for one board.
type NodeConfig struct {
	Watchdog  WatchdogParams  `json:"watchdog"`
	IMU       IMUParams       `json:"imu"`
	Telemetry TelemetryParams `json:"telemetry"`
}
