package main

import (
	"context"
	"time"

	"imunode-go/bus"
	"imunode-go/platform"
	"imunode-go/services/config"
	"imunode-go/services/imu"
	"imunode-go/services/supervisor"
	"imunode-go/services/telemetry"
	"imunode-go/watchdog"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	deps, err := platform.Setup()
	if err != nil {
		println("[main] platform setup failed:", err.Error())
		return
	}

	wd := watchdog.New(deps.Countdown, deps.OscillatorHz)
	println("[main] boot on", deps.Board)
	if wd.CausedLastReset() {
		println("[main] recovering from watchdog reset")
	}

	ctx := context.WithValue(context.Background(), config.CtxBoardKey, deps.Board)
	b := bus.NewBus(16)

	// Supervisor first so the retained config arms the countdown as soon as
	// it lands; config last so nothing misses it.
	if err := supervisor.New(wd).Start(ctx, b.NewConnection("supervisor")); err != nil {
		println("[main] supervisor start failed:", err.Error())
		return
	}
	if err := telemetry.New(deps.Console).Start(ctx, b.NewConnection("telemetry")); err != nil {
		println("[main] telemetry start failed:", err.Error())
		return
	}
	if err := imu.New(deps.Source).Start(ctx, b.NewConnection("imu")); err != nil {
		println("[main] imu start failed:", err.Error())
		return
	}
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	select {}
}
