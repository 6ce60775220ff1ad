package production

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"production",
		logger.WithNamedLogger("production"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
