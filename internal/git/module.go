package git

import (
	"context"
	"time"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const startupTimeout = 2 * time.Minute

func Module() fx.Option {
	return fx.Module(
		"git",
		logger.WithNamedLogger("git"),
		fx.Provide(NewService),
		fx.Invoke(func(lc fx.Lifecycle, svc *Service, logger *zap.Logger) {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})

			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go func() {
						defer close(done)

						ensureCtx, ensureCancel := context.WithTimeout(ctx, startupTimeout)
						defer ensureCancel()

						if _, err := svc.Ensure(ensureCtx); err != nil {
							logger.Error("failed to prepare image repository", zap.Error(err))
						}
					}()
					return nil
				},
				OnStop: func(stopCtx context.Context) error {
					cancel()
					select {
					case <-done:
					case <-stopCtx.Done():
					}
					return nil
				},
			})
		}),
	)
}
