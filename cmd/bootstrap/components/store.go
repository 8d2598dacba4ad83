package components

import (
	"tableline/internal/infra/mailbox"
	"tableline/internal/infra/memstore"
	"tableline/internal/pkg/clock"
	"tableline/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			memstore.NewStore,
			fx.As(new(usecase.ReservationStore)),
		),
		fx.Annotate(
			mailbox.NewMailbox,
			fx.As(new(usecase.UpdateMailbox)),
		),
	),
)
