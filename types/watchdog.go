package types

// ---- Watchdog (countdown timer) ----

// WatchdogParams configures the hardware countdown.
type WatchdogParams struct {
	TimeoutSeconds float64 `json:"timeout_s"` // requested; > 0
	OscillatorHz   uint32  `json:"osc_hz"`    // low-speed oscillator feeding the counter
}

// WatchdogStatus is the retained status the supervisor publishes after
// arming (and once at boot for the reset cause).
type WatchdogStatus struct {
	CausedLastReset  bool    `json:"caused_last_reset"`
	Armed            bool    `json:"armed"`
	Divider          uint16  `json:"divider,omitempty"`
	Reload           uint16  `json:"reload,omitempty"`
	EffectiveSeconds float64 `json:"effective_s,omitempty"`
	Error            string  `json:"error,omitempty"` // short code, e.g. timeout_out_of_range
	TS               int64   `json:"ts_ms"`
}
