package bootstrap

import (
	"context"

	"flashbooth/internal/infra/db"
	"flashbooth/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db", fx.Provide(NewDB))

// NewDB opens the connection pool and ties its shutdown to the app
// lifecycle. Connection failure aborts startup.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
