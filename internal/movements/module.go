package movements

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"movements",
		logger.WithNamedLogger("movements"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(func(movements *Repository, logger *zap.Logger) *Service {
			return NewService(movements, logger)
		}),
	)
}
