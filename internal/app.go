package internal

import (
	"context"

	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/bakerypro/bakerypro/internal/batches"
	"github.com/bakerypro/bakerypro/internal/categories"
	"github.com/bakerypro/bakerypro/internal/config"
	"github.com/bakerypro/bakerypro/internal/db"
	"github.com/bakerypro/bakerypro/internal/git"
	"github.com/bakerypro/bakerypro/internal/ingredients"
	"github.com/bakerypro/bakerypro/internal/movements"
	"github.com/bakerypro/bakerypro/internal/production"
	"github.com/bakerypro/bakerypro/internal/products"
	"github.com/bakerypro/bakerypro/internal/recipes"
	"github.com/bakerypro/bakerypro/internal/server"
	"github.com/bakerypro/bakerypro/pkg/badgerfx"
	"github.com/bakerypro/bakerypro/pkg/pgxfx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		pgxfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		db.Module(),
		git.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		assets.Module(),
		categories.Module(),
		products.Module(),
		ingredients.Module(),
		recipes.Module(),
		batches.Module(),
		production.Module(),
		movements.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🥐 BakeryPro application starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 BakeryPro application shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
