// Package imu polls an orientation source at a fixed cadence and publishes
// samples on the bus. Every successful cycle also publishes a watchdog kick,
// so a stalled sensor loop stops feeding the countdown and forces a restart.
package imu

import (
	"context"
	"time"

	"imunode-go/bus"
	"imunode-go/types"
)

var (
	topicConfig      = bus.Topic{"config", "imu"}
	topicOrientation = bus.Topic{"telemetry", "orientation"}
	topicKick        = bus.Topic{"watchdog", "kick"}
)

const defaultIntervalMs = 100

// Source yields one fused orientation sample per call.
type Source interface {
	ReadSample(out *types.OrientationSample) error
}

type Service struct {
	src Source
}

func New(src Source) *Service {
	return &Service{src: src}
}

// Start launches the polling loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(cfgSub)

	interval := defaultIntervalMs * time.Millisecond
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: imu service stopping")
			return
		case <-tick.C:
			var sample types.OrientationSample
			if err := s.src.ReadSample(&sample); err != nil {
				// No kick on failure: a dead sensor bus must not keep
				// the watchdog fed forever.
				println("Warn: imu read failed:", err.Error())
				continue
			}
			sample.TS = time.Now().UnixMilli()
			conn.Publish(conn.NewMessage(topicOrientation, sample, false))
			conn.Publish(conn.NewMessage(topicKick, nil, false))
		case msg := <-cfgSub.Channel():
			p, ok := msg.Payload.(types.IMUParams)
			if !ok || p.IntervalMs == 0 {
				continue
			}
			next := time.Duration(p.IntervalMs) * time.Millisecond
			if next != interval {
				interval = next
				tick.Reset(interval)
				println("Info: imu poll interval set to", p.IntervalMs, "ms")
			}
		}
	}
}
