package bootstrap

import (
	"context"
	"time"

	"autocare-api/internal/events"
	"autocare-api/internal/pkg/config"
	"autocare-api/internal/pkg/lock"

	"go.uber.org/fx"
)

// Commands that cannot acquire their coordination slot within this window
// surface as Busy rather than queueing indefinitely.
const lockAcquireTimeout = 2 * time.Second

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventBus,
		NewKeyedMutex,
	),
)

func NewEventBus(lc fx.Lifecycle, cfg config.Config) *events.Bus {
	bus := events.NewBus(cfg.Realtime.SendBuffer)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			bus.Close()
			return nil
		},
	})

	return bus
}

func NewKeyedMutex() *lock.KeyedMutex {
	return lock.NewKeyedMutex(lockAcquireTimeout)
}
