package iwdg

import "sync"

// Sim is a functional in-memory countdown timer. It records the register
// sequence so hosted builds behave sensibly and tests can assert the arming
// protocol without hardware. Safe for concurrent use (tests observe it from
// outside the service goroutine).
type Sim struct {
	mu       sync.Mutex
	cause    bool
	unlocked bool
	divider  uint16
	reload   uint16
	started  bool
	kicks    int
}

// SimState is a point-in-time copy of the simulated registers.
type SimState struct {
	Cause    bool
	Unlocked bool
	Divider  uint16
	Reload   uint16
	Started  bool
	Kicks    int
}

func NewSim() *Sim { return &Sim{} }

// SetCause simulates the hardware reset-cause flag; call it before handing
// the Sim to watchdog.New.
func (s *Sim) SetCause(v bool) {
	s.mu.Lock()
	s.cause = v
	s.mu.Unlock()
}

// Snapshot returns a copy of the simulated register state.
func (s *Sim) Snapshot() SimState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SimState{
		Cause:    s.cause,
		Unlocked: s.unlocked,
		Divider:  s.divider,
		Reload:   s.reload,
		Started:  s.started,
		Kicks:    s.kicks,
	}
}

func (s *Sim) Unlock() {
	s.mu.Lock()
	s.unlocked = true
	s.mu.Unlock()
}

func (s *Sim) SetDivider(divider uint16) {
	s.mu.Lock()
	if s.unlocked {
		s.divider = divider
	}
	s.mu.Unlock()
}

func (s *Sim) SetReload(value uint16) {
	s.mu.Lock()
	if s.unlocked {
		s.reload = value & 0x0FFF
	}
	s.mu.Unlock()
}

func (s *Sim) Kick() {
	s.mu.Lock()
	s.kicks++
	s.started = true
	s.unlocked = false // kicking re-engages write protection, as on hardware
	s.mu.Unlock()
}

func (s *Sim) CausedReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cause
}
