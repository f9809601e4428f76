package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/example/shopfront/internal/adapter/storeapi"
	"github.com/example/shopfront/internal/config"
	"github.com/example/shopfront/internal/domain/repository"
)

// Module provides the catalog controller to the fx container.
var Module = fx.Provide(newController)

type controllerParams struct {
	fx.In

	Client   storeapi.Client
	Keys     repository.KeyStore
	Cart     repository.CartStore
	View     View
	Notifier Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newController(p controllerParams) *Controller {
	return NewController(p.Client, p.Keys, p.Cart, p.View, p.Notifier, p.Config.PageSize, p.Config.AutocompleteDelay, p.Logger)
}
