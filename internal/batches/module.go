package batches

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"batches",
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
