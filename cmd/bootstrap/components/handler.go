package components

import (
	"voltbite/internal/handler"
	"voltbite/internal/handler/api"
	"voltbite/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewOrderHandler,
		api.NewChargingHandler,
		api.NewSimulatorHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
