//go:build rp2040

package iwdg

import (
	"device/rp"
	"machine"
)

// RP2040 adapts the divider/reload model onto the RP2040 watchdog, which
// takes a millisecond timeout instead of prescaler registers. Divider and
// reload writes are staged; the first kick converts them to a timeout,
// configures and starts the hardware, and later kicks feed it.
type RP2040 struct {
	oscHz   uint32
	divider uint16
	reload  uint16
	started bool
}

// NewRP2040 needs the oscillator frequency the selector was parameterised
// with, so staged divider/reload pairs convert back to wall time.
func NewRP2040(oscillatorHz uint32) *RP2040 {
	return &RP2040{oscHz: oscillatorHz}
}

// Unlock is a no-op; the RP2040 watchdog has no write protection.
func (d *RP2040) Unlock() {}

func (d *RP2040) SetDivider(divider uint16) { d.divider = divider }

func (d *RP2040) SetReload(value uint16) { d.reload = value & 0x0FFF }

func (d *RP2040) Kick() {
	if !d.started {
		ms := uint64(d.divider) * uint64(d.reload) * 1000 / uint64(d.oscHz)
		if ms == 0 {
			ms = 1
		}
		_ = machine.Watchdog.Configure(machine.WatchdogConfig{
			TimeoutMillis: uint32(ms),
		})
		_ = machine.Watchdog.Start()
		d.started = true
		return
	}
	machine.Watchdog.Update()
}

// CausedReset reports whether the watchdog forced the last restart.
func (d *RP2040) CausedReset() bool {
	return rp.WATCHDOG.REASON.HasBits(rp.WATCHDOG_REASON_TIMER_Msk)
}
