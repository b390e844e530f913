package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewServiceHandler,
		api.NewStaffHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
