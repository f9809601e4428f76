package di

import (
	"go.uber.org/fx"

	"github.com/example/shopfront/internal/adapter/storeapi"
	"github.com/example/shopfront/internal/app"
	"github.com/example/shopfront/internal/cart"
	"github.com/example/shopfront/internal/catalog"
	"github.com/example/shopfront/internal/config"
	"github.com/example/shopfront/internal/logger"
	"github.com/example/shopfront/internal/orders"
	"github.com/example/shopfront/internal/storage/sqlite"
	"github.com/example/shopfront/internal/ui"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		sqlite.Module,
		storeapi.Module,
		ui.Module,
		catalog.Module,
		cart.Module,
		orders.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
