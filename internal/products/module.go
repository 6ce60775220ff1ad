package products

import (
	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"products",
		logger.WithNamedLogger("products"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(func(products *Repository, images *assets.Service, logger *zap.Logger) *Service {
			return NewService(products, images, logger)
		}),
	)
}
