package cart

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/example/shopfront/internal/adapter/storeapi"
	domainErrors "github.com/example/shopfront/internal/domain/errors"
	"github.com/example/shopfront/internal/domain/model"
	"github.com/example/shopfront/internal/domain/repository"
	"github.com/example/shopfront/internal/pkg/dates"
)

// Controller owns the cart page: resolving stored ids into goods, removal
// and the checkout flow with its client-side validation.
type Controller struct {
	api      API
	keys     repository.KeyStore
	cart     repository.CartStore
	view     View
	notifier Notifier
	logger   *slog.Logger
}

// NewController constructs the cart controller.
func NewController(api API, keys repository.KeyStore, cart repository.CartStore, view View, notifier Notifier, logger *slog.Logger) *Controller {
	return &Controller{
		api:      api,
		keys:     keys,
		cart:     cart,
		view:     view,
		notifier: notifier,
		logger:   logger,
	}
}

// Render resolves every stored id into a good and draws the list with its
// total. Lookups run concurrently; an id that fails to resolve is logged
// and skipped so one stale entry cannot blank the whole cart.
func (c *Controller) Render(ctx context.Context) {
	ids := c.cart.IDs()
	if len(ids) == 0 {
		c.view.ShowEmpty()
		return
	}

	results := make([]*model.Good, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			good, err := c.api.GetGood(ctx, id)
			if err != nil {
				c.logger.Warn("cart item lookup failed", slog.Int64("good_id", id), slog.String("error", err.Error()))
				return
			}
			results[i] = good
		}(i, id)
	}
	wg.Wait()

	goods := make([]model.Good, 0, len(results))
	var total float64
	for _, g := range results {
		if g == nil {
			continue
		}
		goods = append(goods, *g)
		total += g.EffectivePrice()
	}

	if len(goods) == 0 {
		c.view.ShowEmpty()
		return
	}
	c.view.RenderItems(goods, total)
}

// Remove drops one id from the cart and redraws it.
func (c *Controller) Remove(ctx context.Context, id int64) {
	c.cart.Remove(id)
	c.notifier.Success("Good removed from cart")
	c.Render(ctx)
}

// Checkout validates the form and submits the order. Validation stops at
// the first failure with a toast; card details are verified locally and
// never leave the client.
func (c *Controller) Checkout(ctx context.Context, form Form) {
	if c.keys.Get() == "" {
		c.notifier.Error("Set an API key before ordering")
		return
	}

	ids := c.cart.IDs()
	if len(ids) == 0 {
		c.logger.Info("checkout blocked", slog.String("reason", domainErrors.ErrCartEmpty.Error()))
		c.notifier.Error("Cart is empty")
		return
	}

	if !form.contactComplete() {
		c.notifier.Error("Fill in name, address, phone and email")
		return
	}
	if !dates.IsISO(strings.TrimSpace(form.DeliveryDate)) {
		c.notifier.Error("Choose a delivery date")
		return
	}
	if !model.ValidDeliveryInterval(form.DeliveryInterval) {
		c.notifier.Error("Choose a delivery interval")
		return
	}

	if !form.cardPresent() {
		c.view.ShowPayment()
		c.notifier.Error("Enter payment details to place the order")
		return
	}
	if !validCardNumber(form.CardNumber) {
		c.notifier.Error("Card number must be 16 digits")
		return
	}
	if !validCardExpiry(form.CardExpiry) {
		c.notifier.Error("Card expiry must be MM/YY")
		return
	}
	if !validCardCVC(form.CardCVC) {
		c.notifier.Error("CVC must be 3 digits")
		return
	}

	subscribe := 0
	if form.Subscribe {
		subscribe = 1
	}
	payload := model.CreateOrderRequest{
		FullName:         strings.TrimSpace(form.FullName),
		DeliveryAddress:  strings.TrimSpace(form.DeliveryAddress),
		Phone:            strings.TrimSpace(form.Phone),
		Email:            strings.TrimSpace(form.Email),
		DeliveryDate:     dates.ToWire(strings.TrimSpace(form.DeliveryDate)),
		DeliveryInterval: form.DeliveryInterval,
		Comment:          strings.TrimSpace(form.Comment),
		Subscribe:        subscribe,
		GoodIDs:          ids,
	}

	order, err := c.api.CreateOrder(ctx, payload)
	if err != nil {
		var reqErr *storeapi.RequestFailedError
		if errors.As(err, &reqErr) {
			c.notifier.Error(reqErr.Message)
		} else {
			c.logger.Error("order creation failed", slog.String("error", err.Error()))
			c.notifier.Error("Failed to create the order, try again")
		}
		return
	}

	idText := "unknown"
	if order != nil && order.ID != 0 {
		idText = strconv.FormatInt(order.ID, 10)
	}

	c.cart.Clear()
	c.Render(ctx)
	c.notifier.Success("Order " + idText + " created")
}
