package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/example/shopfront/internal/adapter/storeapi"
	domainErrors "github.com/example/shopfront/internal/domain/errors"
	"github.com/example/shopfront/internal/domain/model"
	"github.com/example/shopfront/internal/pkg/dates"
)

const (
	msgOrdersFailed = "Failed to load orders, try again"
	msgNoOrders     = "You have no orders yet"
)

// Controller owns the order history page: listing, edit and deletion.
type Controller struct {
	api       API
	view      View
	notifier  Notifier
	confirmer Confirmer
	editor    EditPrompt
	cache     *GoodCache
	logger    *slog.Logger
}

// NewController constructs the order history controller.
func NewController(api API, view View, notifier Notifier, confirmer Confirmer, editor EditPrompt, logger *slog.Logger) *Controller {
	return &Controller{
		api:       api,
		view:      view,
		notifier:  notifier,
		confirmer: confirmer,
		editor:    editor,
		cache:     NewGoodCache(api),
		logger:    logger,
	}
}

// List fetches the order history and renders it newest-first, resolving
// each order's goods through the shared cache.
func (c *Controller) List(ctx context.Context) {
	orders, err := c.api.ListOrders(ctx)
	if err != nil {
		c.logger.Error("order listing failed", slog.String("error", err.Error()))
		c.view.ShowEmpty(msgOrdersFailed)
		return
	}
	if len(orders) == 0 {
		c.view.ShowEmpty(msgNoOrders)
		return
	}

	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })

	compositions := make([]string, len(sorted))
	totals := make([]float64, len(sorted))
	for i, o := range sorted {
		goods := c.cache.ResolveMany(ctx, o.GoodIDs)
		compositions[i] = Composition(goods)
		for _, g := range goods {
			totals[i] += g.EffectivePrice()
		}
	}

	c.view.RenderOrders(sorted, compositions, totals)
}

// Edit looks the order up in a fresh listing, collects new delivery
// details and submits a partial update. An update failure keeps the old
// table so the user can retry.
func (c *Controller) Edit(ctx context.Context, id int64) {
	orders, err := c.api.ListOrders(ctx)
	if err != nil {
		c.notifier.Error(requestMessage(err, "Failed to load the order"))
		return
	}

	var order *model.Order
	for i := range orders {
		if orders[i].ID == id {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		c.logger.Warn("order edit requested", slog.Int64("order_id", id), slog.String("error", domainErrors.ErrOrderNotFound.Error()))
		c.notifier.Error(fmt.Sprintf("Order %d was not found", id))
		return
	}

	current := model.UpdateOrderRequest{
		DeliveryAddress:  order.DeliveryAddress,
		DeliveryDate:     dates.ToInput(order.DeliveryDate),
		DeliveryInterval: order.DeliveryInterval,
		Comment:          order.Comment,
	}

	updated, save := c.editor.Edit(current)
	if !save {
		return
	}

	if _, err := c.api.UpdateOrder(ctx, id, updated); err != nil {
		c.notifier.Error(requestMessage(err, "Failed to update the order"))
		return
	}

	c.notifier.Success(fmt.Sprintf("Order %d updated", id))
	c.List(ctx)
}

// Delete removes an order after an explicit confirmation.
func (c *Controller) Delete(ctx context.Context, id int64) {
	ok := c.confirmer.Confirm("Delete order", fmt.Sprintf("Delete order %d? This cannot be undone.", id))
	if !ok {
		return
	}

	if err := c.api.DeleteOrder(ctx, id); err != nil {
		c.notifier.Error(requestMessage(err, "Failed to delete the order"))
		return
	}

	c.notifier.Success(fmt.Sprintf("Order %d deleted", id))
	c.List(ctx)
}

// Composition summarizes an order's goods for the table cell.
func Composition(goods []model.Good) string {
	switch len(goods) {
	case 0:
		return "—"
	case 1:
		return goods[0].Name
	default:
		return fmt.Sprintf("%s and %d more", goods[0].Name, len(goods)-1)
	}
}

// FormatCreatedAt renders an RFC 3339 creation stamp as a local
// `YYYY-MM-DD HH:MM:SS`. Values the store sends in another shape pass
// through untouched.
func FormatCreatedAt(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// DeliverySlot joins the delivery date and interval for the table cell.
func DeliverySlot(o model.Order) string {
	if o.DeliveryInterval == "" {
		return o.DeliveryDate
	}
	return o.DeliveryDate + " " + o.DeliveryInterval
}

func requestMessage(err error, fallback string) string {
	var reqErr *storeapi.RequestFailedError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
