package components

import (
	"log/slog"

	"tableline/internal/infra/places"
	"tableline/internal/infra/voice"
	"tableline/internal/pkg/config"
	"tableline/internal/usecase"

	"go.uber.org/fx"
)

var CollaboratorModule = fx.Module("collaborator",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *places.Client {
				return places.NewClient(cfg.Places, logger)
			},
			fx.As(new(usecase.DirectoryLookup)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *voice.Client {
				return voice.NewClient(cfg.Voice, logger)
			},
			fx.As(new(usecase.CallInitiator)),
		),
	),
)
