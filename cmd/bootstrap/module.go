package bootstrap

import (
	"salon-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	CalendarModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
