// Package config publishes per-board configuration as retained bus messages,
// one topic per section, so services can subscribe at any time and still see
// the settings that apply to them.
package config

import (
	"context"
	"errors"

	"imunode-go/bus"
	"imunode-go/types"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxBoardKey  = "board" // context key carrying the board name
)

// EmbeddedConfigLookup resolves a board name to its configuration. Tests and
// custom images can replace it.
var EmbeddedConfigLookup = func(board string) (types.NodeConfig, bool) {
	cfg, ok := embeddedConfigs[board]
	return cfg, ok
}

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// publishConfig resolves the board config and publishes each section retained.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	board, _ := ctx.Value(CtxBoardKey).(string)
	if board == "" {
		return errors.New("missing board name in context")
	}

	cfg, ok := EmbeddedConfigLookup(board)
	if !ok {
		return errors.New("no embedded config for board: " + board)
	}

	conn.Publish(&bus.Message{
		Topic:    bus.T(configPrefix, "watchdog"),
		Payload:  cfg.Watchdog,
		Retained: true,
	})
	conn.Publish(&bus.Message{
		Topic:    bus.T(configPrefix, "imu"),
		Payload:  cfg.IMU,
		Retained: true,
	})
	conn.Publish(&bus.Message{
		Topic:    bus.T(configPrefix, "telemetry"),
		Payload:  cfg.Telemetry,
		Retained: true,
	})
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("Error: config:", err.Error())
		}
	}()
}
