package orders

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/example/shopfront/internal/adapter/storeapi"
)

// Module provides the order history controller to the fx container.
var Module = fx.Provide(newController)

type controllerParams struct {
	fx.In

	Client    storeapi.Client
	View      View
	Notifier  Notifier
	Confirmer Confirmer
	Editor    EditPrompt
	Logger    *slog.Logger
}

func newController(p controllerParams) *Controller {
	return NewController(p.Client, p.View, p.Notifier, p.Confirmer, p.Editor, p.Logger)
}
