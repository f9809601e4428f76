package orders

import (
	"context"

	"github.com/example/shopfront/internal/domain/model"
)

// View is the rendering surface for the order history table.
type View interface {
	// RenderOrders draws the table. compositions and totals are parallel
	// to orders: the short goods summary and the order cost per row.
	RenderOrders(orders []model.Order, compositions []string, totals []float64)
	// ShowEmpty replaces the table with a message.
	ShowEmpty(message string)
}

// Notifier shows transient toast notifications.
type Notifier interface {
	Success(text string)
	Error(text string)
	Info(text string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(title, message string) bool
}

// EditPrompt collects updated delivery details for one order. The second
// return value reports whether the user chose to save.
type EditPrompt interface {
	Edit(current model.UpdateOrderRequest) (model.UpdateOrderRequest, bool)
}

// API is the slice of the store client the order history needs.
type API interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetGood(ctx context.Context, id int64) (*model.Good, error)
	UpdateOrder(ctx context.Context, id int64, payload model.UpdateOrderRequest) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
