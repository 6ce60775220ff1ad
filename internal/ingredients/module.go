package ingredients

import (
	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"ingredients",
		logger.WithNamedLogger("ingredients"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(func(ingredients *Repository, images *assets.Service, logger *zap.Logger) *Service {
			return NewService(ingredients, images, logger)
		}),
	)
}
