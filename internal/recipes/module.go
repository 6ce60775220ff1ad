package recipes

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"recipes",
		logger.WithNamedLogger("recipes"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
