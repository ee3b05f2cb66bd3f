// Package telemetry prints orientation samples to the serial console,
// one human-readable line per sample.
package telemetry

import (
	"context"
	"io"
	"time"

	"imunode-go/bus"
	"imunode-go/types"
)

var (
	topicConfig      = bus.Topic{"config", "telemetry"}
	topicOrientation = bus.Topic{"telemetry", "orientation"}
)

type Service struct {
	console io.Writer
	start   time.Time
	params  types.TelemetryParams
}

// New wraps a console writer (UART/USB serial on MCU builds, stdout on the
// host). Uptime in the printed lines counts from New.
func New(console io.Writer) *Service {
	return &Service{
		console: console,
		start:   time.Now(),
		params:  types.TelemetryParams{Degrees: true, WithAccel: true},
	}
}

// Start launches the printing loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(cfgSub)
	samples := conn.Subscribe(topicOrientation)
	defer conn.Unsubscribe(samples)

	for {
		select {
		case <-ctx.Done():
			println("Info: telemetry service stopping")
			return
		case msg := <-samples.Channel():
			sample, ok := msg.Payload.(types.OrientationSample)
			if !ok {
				continue
			}
			line := FormatLine(sample, s.params, time.Since(s.start).Seconds())
			if _, err := io.WriteString(s.console, line); err != nil {
				println("Warn: telemetry write failed:", err.Error())
			}
		case msg := <-cfgSub.Channel():
			if p, ok := msg.Payload.(types.TelemetryParams); ok {
				s.params = p
			}
		}
	}
}
