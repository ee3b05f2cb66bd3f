package types

// ---- Capability kinds ----

type Kind string

const (
	KindOrientation  Kind = "orientation"
	KindAcceleration Kind = "acceleration"
	KindWatchdog     Kind = "watchdog"
	KindSerial       Kind = "serial"
)

// ---- Telemetry samples ----

// OrientationSample is one fused IMU reading, fixed-point to keep the bus
// payloads float-free on MCU builds.
type OrientationSample struct {
	// Euler angles in deci-degrees (tenths of a degree).
	HeadingDeci int32 `json:"heading_ddeg"`
	RollDeci    int32 `json:"roll_ddeg"`
	PitchDeci   int32 `json:"pitch_ddeg"`

	// Linear acceleration in centi-m/s² (hundredths).
	AccelXCenti int32 `json:"ax_cms2"`
	AccelYCenti int32 `json:"ay_cms2"`
	AccelZCenti int32 `json:"az_cms2"`

	TS int64 `json:"ts_ms"` // Unix ms at read time
}

// ---- Generic replies ----

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"` // machine-readable short code
}
