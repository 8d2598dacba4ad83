package components

import (
	"tableline/internal/handler"
	"tableline/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFunctionHandler,
		api.NewEventHandler,
		api.NewDebugHandler,
	),
	fx.Invoke(handler.NewRouter),
)
