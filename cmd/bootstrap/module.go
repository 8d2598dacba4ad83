package bootstrap

import (
	"tableline/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.StoreModule,
	components.CollaboratorModule,
	components.UseCaseModule,
	components.HandlerModule,
)
