// Package supervisor owns the hardware watchdog on behalf of the node. It
// arms the countdown from retained config, republishes the latched reset
// cause and the armed configuration as retained status, and feeds the
// hardware whenever a kick message arrives.
package supervisor

import (
	"context"
	"time"

	"imunode-go/bus"
	"imunode-go/errcode"
	"imunode-go/types"
	"imunode-go/watchdog"
)

var (
	topicConfig = bus.Topic{"config", "watchdog"}
	topicKick   = bus.Topic{"watchdog", "kick"}
	topicStatus = bus.Topic{"watchdog", "status"}
)

type Service struct {
	wd *watchdog.Watchdog
}

func New(wd *watchdog.Watchdog) *Service {
	return &Service{wd: wd}
}

// Start launches the supervisor loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	// Boot status first, so anyone can learn why the node restarted.
	s.publishStatus(conn, errcode.OK)

	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(cfgSub)
	kickSub := conn.Subscribe(topicKick)
	defer conn.Unsubscribe(kickSub)

	for {
		select {
		case <-ctx.Done():
			// The hardware keeps counting; whoever cancelled us owns
			// the consequences.
			println("Info: supervisor stopping, countdown stays armed")
			return
		case <-kickSub.Channel():
			if s.wd.Armed() {
				s.wd.Service()
			}
		case msg := <-cfgSub.Channel():
			s.configure(conn, msg.Payload)
		}
	}
}

func (s *Service) configure(conn *bus.Connection, payload any) {
	p, ok := payload.(types.WatchdogParams)
	if !ok {
		println("Warn: watchdog config with unexpected payload")
		return
	}
	if s.wd.Armed() {
		// The countdown has no disarm path; a second config is a no-op.
		println("Warn: watchdog already armed, config ignored")
		return
	}
	if p.OscillatorHz != 0 && p.OscillatorHz != s.wd.OscillatorHz() {
		// The tick rate comes from the board, not the config; a mismatch
		// means the config was written for different hardware.
		println("Warn: watchdog config oscillator", p.OscillatorHz,
			"differs from hardware", s.wd.OscillatorHz())
	}

	cfg, err := s.wd.Configure(p.TimeoutSeconds)
	code := errcode.Of(err)
	switch code {
	case errcode.OK:
		println("Info: watchdog armed, divider", cfg.Divider, "reload", cfg.Reload)
	case errcode.TimeoutOutOfRange:
		println("Warn: watchdog timeout truncated to hardware maximum")
	default:
		println("Error: watchdog configure:", err.Error())
	}
	s.publishStatus(conn, code)
}

func (s *Service) publishStatus(conn *bus.Connection, code errcode.Code) {
	st := types.WatchdogStatus{
		CausedLastReset: s.wd.CausedLastReset(),
		Armed:           s.wd.Armed(),
		TS:              time.Now().UnixMilli(),
	}
	if cfg, ok := s.wd.Config(); ok {
		st.Divider = cfg.Divider
		st.Reload = cfg.Reload
		st.EffectiveSeconds = cfg.EffectiveSeconds
	}
	if code != errcode.OK {
		st.Error = string(code)
	}
	conn.Publish(conn.NewMessage(topicStatus, st, true))
}
