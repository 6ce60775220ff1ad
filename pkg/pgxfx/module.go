package pgxfx

import (
	"context"
	"fmt"

	"github.com/go-core-fx/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"pgxfx",
		logger.WithNamedLogger("pgxfx"),
		fx.Provide(New),
		fx.Provide(func(pool *pgxpool.Pool) DB { return pool }),
		fx.Invoke(func(pool *pgxpool.Pool, logger *zap.Logger, lifecycle fx.Lifecycle) {
			lifecycle.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					logger.Info("connecting to database")
					if err := pool.Ping(ctx); err != nil {
						return fmt.Errorf("failed to connect to database: %w", err)
					}
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("closing database connections")
					pool.Close()
					return nil
				},
			})
		}),
	)
}
