package db

import (
	"context"

	"github.com/bakerypro/bakerypro/pkg/pgxfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"db",
		logger.WithNamedLogger("db"),
		fx.Invoke(func(db pgxfx.DB, logger *zap.Logger, lifecycle fx.Lifecycle) {
			lifecycle.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					if err := Migrate(ctx, db); err != nil {
						return err
					}
					logger.Info("database schema is up to date")
					return nil
				},
			})
		}),
	)
}
