package components

import (
	"log/slog"

	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/notify"
	infraredis "salon-booking/internal/infra/redis"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/vercode"
	"salon-booking/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		vercode.NewCryptoGenerator,

		repository.NewBookingRepository,
		repository.NewServiceRepository,
		repository.NewStaffRepository,
		repository.NewVerificationCodeRepository,

		// Interface bindings consumed by the usecase layer
		func(r *repository.BookingRepository) usecase.BookingReads { return r },
		func(r *repository.BookingRepository) usecase.BookingQueries { return r },
		func(r *repository.BookingRepository) usecase.BookingWrites { return r },
		func(r *repository.ServiceRepository) usecase.ServiceReads { return r },
		func(r *repository.ServiceRepository) usecase.ServiceRepository { return r },
		func(r *repository.StaffRepository) usecase.StaffReads { return r },
		func(r *repository.StaffRepository) usecase.AuthStaffReads { return r },
		func(r *repository.StaffRepository) usecase.StaffRepository { return r },
		func(r *repository.VerificationCodeRepository) usecase.VerificationCodeWrites { return r },

		NewSendThrottle,
		NewCodeSender,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewSendThrottle(client *redis.Client, cfg config.Config) usecase.CodeThrottle {
	return infraredis.NewSendThrottle(
		client,
		cfg.Verification.ResendWindow,
		cfg.Verification.SendLimit,
		cfg.Verification.SendWindow,
	)
}

func NewCodeSender(cfg config.Config, logger *slog.Logger) notify.CodeSender {
	return notify.NewCodeSender(cfg.SMTP, logger)
}
