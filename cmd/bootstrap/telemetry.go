package bootstrap

import (
	"context"

	"autocare-api/internal/pkg/config"
	"autocare-api/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config) {
	shutdown := telemetry.Setup(cfg.Telemetry)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
}
