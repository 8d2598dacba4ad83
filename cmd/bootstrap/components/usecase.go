package components

import (
	"tableline/internal/domain/outcome"
	"tableline/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			outcome.NewKeywordClassifier,
			fx.As(new(usecase.OutcomeClassifier)),
		),
		usecase.NewCoordinator,
		usecase.NewBookingCommands,
	),
)
