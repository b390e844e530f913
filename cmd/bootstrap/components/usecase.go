package components

import (
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config) config.VerificationConfig { return cfg.Verification },

		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewStaffUseCase,
	),
)
