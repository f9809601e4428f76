package ui

import (
	"bufio"
	"os"

	"go.uber.org/fx"

	"github.com/example/shopfront/internal/cart"
	"github.com/example/shopfront/internal/catalog"
	"github.com/example/shopfront/internal/config"
	"github.com/example/shopfront/internal/orders"
)

// Module wires the terminal renderers and prompts to the interfaces each
// controller consumes. One buffered reader over stdin is shared by every
// prompt and the command loop.
var Module = fx.Options(
	fx.Provide(
		func() *bufio.Reader { return bufio.NewReader(os.Stdin) },
		newNotifier,
		func(in *bufio.Reader) *TermConfirmer { return NewTermConfirmer(in, os.Stdout) },
		func(in *bufio.Reader) *TermOrderEditor { return NewTermOrderEditor(in, os.Stdout) },
	),
	fx.Provide(
		func() *CatalogView { return NewCatalogView(os.Stdout) },
		func() *CartView { return NewCartView(os.Stdout) },
		func() *OrdersView { return NewOrdersView(os.Stdout) },
	),
	fx.Provide(
		func(v *CatalogView) catalog.View { return v },
		func(v *CartView) cart.View { return v },
		func(v *OrdersView) orders.View { return v },
		func(n *TermNotifier) catalog.Notifier { return n },
		func(n *TermNotifier) cart.Notifier { return n },
		func(n *TermNotifier) orders.Notifier { return n },
		func(c *TermConfirmer) orders.Confirmer { return c },
		func(e *TermOrderEditor) orders.EditPrompt { return e },
	),
)

type notifierParams struct {
	fx.In

	Config *config.Config
}

func newNotifier(p notifierParams) *TermNotifier {
	return NewTermNotifier(os.Stdout, p.Config.NotificationTimeout)
}
