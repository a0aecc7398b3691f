package bootstrap

import (
	"context"
	"net/http"

	"autocare-api/internal/events"
	"autocare-api/internal/pkg/config"
	"autocare-api/internal/pkg/jwt"
	"autocare-api/internal/realtime"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		realtime.NewHub,
		NewRealtimeEndpoint,
	),
	fx.Invoke(StartFanOut),
)

func NewRealtimeEndpoint(hub *realtime.Hub, tokens *jwt.Service, cfg config.Config) http.Handler {
	return realtime.NewEndpoint(hub, tokens, cfg.Realtime.SendBuffer)
}

// StartFanOut pumps bus events into the hub for the process lifetime. The
// pump goroutine exits when the bus closes on shutdown.
func StartFanOut(lc fx.Lifecycle, hub *realtime.Hub, bus *events.Bus) {
	fanout := realtime.NewFanOut(hub, bus)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go fanout.Run()
			return nil
		},
	})
}
