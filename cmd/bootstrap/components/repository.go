package components

import (
	"room-booking-api/internal/infra/db"
	repo_impl "room-booking-api/internal/infra/repository"
	"room-booking-api/internal/usecase"
	"room-booking-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			db.NewPgxTxManager,
			fx.As(new(shared.TxManager)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
			fx.As(new(usecase.RoomReader)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
	),
)
