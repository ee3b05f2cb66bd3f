// Package watchdog maps a requested timeout onto the divider/reload pair of a
// hardware countdown timer and arms it.
//
//	wd := watchdog.New(drv, 45_000)
//	if wd.CausedLastReset() {
//		println("watchdog caused the last restart")
//	}
//	cfg, err := wd.Configure(1.4) // arm with a 1.4 s timeout
//	for {
//		wd.Service() // kick before cfg.EffectiveSeconds elapses
//		// do other work
//	}
//
// The countdown runs from a fixed low-speed oscillator through one of a small
// set of clock dividers into a 12-bit reload register. Configure picks the
// smallest divider that can still represent the request, so the timeout keeps
// the finest resolution available. Once armed the hardware cannot be
// disarmed; a missed Service forces a system restart.
package watchdog

import (
	"imunode-go/errcode"
	"imunode-go/x/mathx"
)

// Timer is the narrow capability set the countdown hardware must expose.
// Implementations live in drivers/iwdg; tests inject fakes.
type Timer interface {
	// Unlock disables register write protection until the next kick/start.
	Unlock()
	// SetDivider selects the clock divider. The value is one of Dividers;
	// the driver maps it to its register encoding.
	SetDivider(divider uint16)
	// SetReload sets the countdown start value (12 bits).
	SetReload(value uint16)
	// Kick reloads the countdown to the configured start value.
	Kick()
	// CausedReset reports whether the countdown expiring caused the most
	// recent restart. Read once; some hardware clears the flag on read.
	CausedReset() bool
}

// ReloadMax is the width of the reload register (12 bits).
const ReloadMax = 0x0FFF

// Dividers is the hardware's divider enumeration, ascending.
var Dividers = [7]uint16{4, 8, 16, 32, 64, 128, 256}

// threshold returns the register capacity bound used when testing a divider.
// The smallest divider keeps a safety margin (0x7FF); the rest allow nearly
// the full register (0xFF0).
func threshold(divider uint16) float64 {
	if divider == Dividers[0] {
		return 0x7FF
	}
	return 0xFF0
}

// Config is a hardware-representable countdown setting.
type Config struct {
	Divider          uint16
	Reload           uint16
	EffectiveSeconds float64 // divider * reload / oscillator, after rounding
	Saturated        bool    // request exceeded even the coarsest divider
}

// Select computes the divider/reload pair for a requested timeout without
// touching hardware.
//
// It scans the divider enumeration in ascending order and accepts the first
// divider whose tick count for the request stays below its capacity
// threshold. Requests too large for every divider saturate to the coarsest
// one with the reload clamped to ReloadMax; that case arms a shorter timeout
// than asked for and is reported as errcode.TimeoutOutOfRange so callers are
// not silently misled.
//
// seconds must be > 0 and oscillatorHz non-zero; violations return
// errcode.InvalidParams and a zero Config.
func Select(oscillatorHz uint32, seconds float64) (Config, error) {
	if oscillatorHz == 0 || !(seconds > 0) {
		return Config{}, errcode.InvalidParams
	}

	osc := float64(oscillatorHz)
	for _, d := range Dividers {
		counts := seconds * osc / float64(d)
		if counts < threshold(d) {
			reload := uint16(counts) // floor; < threshold <= ReloadMax by construction
			reload = mathx.Clamp(reload, 0, ReloadMax)
			return Config{
				Divider:          d,
				Reload:           reload,
				EffectiveSeconds: float64(d) * float64(reload) / osc,
			}, nil
		}
	}

	// Saturating fallback: coarsest divider, reload pinned to the register
	// width. The armed timeout is the hardware maximum, not the request.
	d := Dividers[len(Dividers)-1]
	counts := seconds * osc / float64(d)
	reload := uint16(ReloadMax)
	if counts < float64(ReloadMax) {
		reload = mathx.Clamp(uint16(counts), 0, ReloadMax)
	}
	return Config{
		Divider:          d,
		Reload:           reload,
		EffectiveSeconds: float64(d) * float64(reload) / osc,
		Saturated:        true,
	}, errcode.TimeoutOutOfRange
}

// Watchdog owns the countdown hardware. Create exactly one per process, at
// startup, so the reset-cause flag is latched before anything clears it.
type Watchdog struct {
	drv    Timer
	oscHz  uint32
	caused bool
	armed  bool
	cfg    Config
}

// New latches the reset cause and wraps the driver. It does not arm.
func New(drv Timer, oscillatorHz uint32) *Watchdog {
	return &Watchdog{
		drv:    drv,
		oscHz:  oscillatorHz,
		caused: drv.CausedReset(),
	}
}

// Configure selects divider/reload for the requested timeout and arms the
// countdown: unlock, divider, reload, then an immediate kick so counting
// starts from the full reload value.
//
// On errcode.InvalidParams no register is written and the countdown stays
// unarmed. On errcode.TimeoutOutOfRange the hardware is still armed with the
// saturated config; the caller decides whether the truncated timeout is
// acceptable. Configure and Service must not be called concurrently.
func (w *Watchdog) Configure(seconds float64) (Config, error) {
	cfg, err := Select(w.oscHz, seconds)
	if cfg.Divider == 0 {
		return cfg, err
	}

	w.drv.Unlock()
	w.drv.SetDivider(cfg.Divider)
	w.drv.SetReload(cfg.Reload)
	w.drv.Kick()

	w.cfg = cfg
	w.armed = true
	return cfg, err
}

// Service kicks the countdown back to its reload value. Call it at a period
// strictly shorter than the armed Config.EffectiveSeconds.
func (w *Watchdog) Service() {
	w.drv.Kick()
}

// CausedLastReset reports the value latched at construction.
func (w *Watchdog) CausedLastReset() bool { return w.caused }

// OscillatorHz returns the countdown tick rate the selection runs on.
func (w *Watchdog) OscillatorHz() uint32 { return w.oscHz }

// Armed reports whether Configure has armed the hardware.
func (w *Watchdog) Armed() bool { return w.armed }

// Config returns the armed configuration, if any.
func (w *Watchdog) Config() (Config, bool) { return w.cfg, w.armed }
