package config

import (
	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/bakerypro/bakerypro/internal/git"
	"github.com/bakerypro/bakerypro/pkg/badgerfx"
	"github.com/bakerypro/bakerypro/pkg/pgxfx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

const applicationName = "bakerypro"

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir:        cfg.Storage.DataDir,
				GCInterval: cfg.Storage.GCInterval,
			}
		}),
		fx.Provide(func(cfg Config) pgxfx.Config {
			return pgxfx.Config{
				DSN:              cfg.Database.DSN,
				ApplicationName:  applicationName,
				MaxConns:         cfg.Database.MaxConns,
				MinConns:         cfg.Database.MinConns,
				MaxConnLifetime:  cfg.Database.MaxConnLifetime,
				MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
				DialTimeout:      cfg.Database.DialTimeout,
				StatementTimeout: cfg.Database.StatementTimeout,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Dir:       cfg.Git.Dir,
				RemoteURL: cfg.Git.Remote,
				Token:     cfg.Git.Token,
				Branch:    cfg.Git.Branch,
				Identity: git.IdentityConfig{
					Name:  cfg.Git.UserName,
					Email: cfg.Git.UserEmail,
				},
				Timeout: cfg.Git.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) assets.Config {
			return assets.Config{
				RawBaseURL: cfg.Git.RawBaseURL,
				RemoteURL:  cfg.Git.Remote,
				Branch:     cfg.Git.Branch,
			}
		}),
	)
}
