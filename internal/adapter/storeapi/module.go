package storeapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/example/shopfront/internal/config"
	"github.com/example/shopfront/internal/domain/repository"
)

// Module exposes the store API client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Keys   repository.KeyStore
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.BaseURL, p.Config.AuthParam, p.Keys, p.Config.RequestTimeout, p.Logger)
}
