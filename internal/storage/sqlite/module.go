package sqlite

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/example/shopfront/internal/config"
	"github.com/example/shopfront/internal/domain/repository"
)

// Module wires the local state storage and its repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.KeyStore { return s.Keys() },
		func(s *Storage) repository.CartStore { return s.Cart() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Config.StatePath, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
