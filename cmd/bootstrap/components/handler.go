package components

import (
	"autocare-api/internal/handler"
	"autocare-api/internal/handler/api"
	"autocare-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewTimeLogHandler,
		api.NewModificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
