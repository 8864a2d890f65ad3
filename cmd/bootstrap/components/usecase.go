package components

import (
	"context"

	"voltbite/internal/notify"
	"voltbite/internal/pkg/clock"
	"voltbite/internal/pkg/config"
	"voltbite/internal/simulator"
	"voltbite/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		notify.NewHub,
		func(hub *notify.Hub) notify.Publisher { return hub },
		usecase.NewReservationUseCase,
		usecase.NewEtaUseCase,
		usecase.NewChargingUseCase,
		usecase.NewOrderUseCase,
		usecase.NewTokenValidator,
		func(uc usecase.ChargingUseCase) simulator.ChargeRecorder { return uc },
		NewSimulator,
	),
)

func NewSimulator(lc fx.Lifecycle, recorder simulator.ChargeRecorder, cfg config.Config) *simulator.Simulator {
	sim := simulator.New(recorder, cfg)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sim.StopAll()
			return nil
		},
	})
	return sim
}
