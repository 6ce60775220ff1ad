package badgerfx

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"badgerfx",
		logger.WithNamedLogger("badgerfx"),
		fx.Provide(newLogger, fx.Private),
		fx.Provide(newDB),
		fx.Invoke(func(db *badger.DB, config Config, logger *zap.Logger, lifecycle fx.Lifecycle) {
			stop := make(chan struct{})
			done := make(chan struct{})

			lifecycle.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("key-value store opened",
						zap.String("dir", config.Dir),
						zap.Bool("in_memory", config.InMemory),
					)

					if config.InMemory || config.GCInterval <= 0 {
						close(done)
						return nil
					}

					go runGC(db, config.GCInterval, logger, stop, done)
					return nil
				},
				OnStop: func(_ context.Context) error {
					close(stop)
					<-done

					if err := db.Close(); err != nil {
						return fmt.Errorf("failed to close badger: %w", err)
					}
					logger.Info("key-value store closed")
					return nil
				},
			})
		}),
	)
}

func runGC(db *badger.DB, interval time.Duration, logger *zap.Logger, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rewritten, err := collectGarbage(db)
			if err != nil {
				logger.Warn("value log gc failed", zap.Error(err))
				continue
			}
			if rewritten > 0 {
				logger.Debug("value log gc", zap.Int("rewritten", rewritten))
			}
		}
	}
}
