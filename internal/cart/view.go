package cart

import (
	"context"

	"github.com/example/shopfront/internal/domain/model"
)

// View is the rendering surface for the cart page.
type View interface {
	// RenderItems shows the resolved cart contents and the order total.
	RenderItems(goods []model.Good, total float64)
	// ShowEmpty replaces the item list with the empty-cart state.
	ShowEmpty()
	// ShowPayment reveals the payment details block.
	ShowPayment()
}

// Notifier shows transient toast notifications.
type Notifier interface {
	Success(text string)
	Error(text string)
	Info(text string)
}

// API is the slice of the store client the cart needs.
type API interface {
	GetGood(ctx context.Context, id int64) (*model.Good, error)
	CreateOrder(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error)
}
