package components

import (
	"room-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewRoomUseCase,
		usecase.NewBookingUseCase,
		usecase.NewTokenValidator,
	),
)
