package app

import (
	"context"

	"github.com/example/shopfront/internal/cart"
	"github.com/example/shopfront/internal/catalog"
	"github.com/example/shopfront/internal/domain/repository"
	"github.com/example/shopfront/internal/orders"
)

// StorefrontFacade is the single entry point the command loop talks to.
// It only routes calls; all page behaviour lives in the controllers.
type StorefrontFacade struct {
	catalog *catalog.Controller
	cart    *cart.Controller
	orders  *orders.Controller
	keys    repository.KeyStore
}

func NewStorefrontFacade(catalogCtrl *catalog.Controller, cartCtrl *cart.Controller, ordersCtrl *orders.Controller, keys repository.KeyStore) *StorefrontFacade {
	return &StorefrontFacade{catalog: catalogCtrl, cart: cartCtrl, orders: ordersCtrl, keys: keys}
}

func (f *StorefrontFacade) HasKey() bool {
	return f.keys.Get() != ""
}

func (f *StorefrontFacade) SaveKey(ctx context.Context, token string) {
	f.catalog.SaveKey(ctx, token)
}

func (f *StorefrontFacade) ClearKey() {
	f.catalog.ClearKey()
}

func (f *StorefrontFacade) LoadCatalog(ctx context.Context) {
	f.catalog.LoadGoods(ctx, true)
}

func (f *StorefrontFacade) Search(ctx context.Context, query string) {
	f.catalog.Search(ctx, query)
}

func (f *StorefrontFacade) Suggest(input string) {
	f.catalog.ScheduleAutocomplete(input)
}

func (f *StorefrontFacade) DismissSuggestions() {
	f.catalog.CancelAutocomplete()
}

func (f *StorefrontFacade) SetSort(ctx context.Context, key string) {
	f.catalog.SetSort(ctx, catalog.ParseSortKey(key))
}

func (f *StorefrontFacade) SetPriceRange(minInput, maxInput string) {
	f.catalog.SetPriceRange(minInput, maxInput)
}

func (f *StorefrontFacade) SetDiscountOnly(on bool) {
	f.catalog.SetDiscountOnly(on)
}

func (f *StorefrontFacade) ToggleCategory(name string) {
	f.catalog.ToggleCategory(name)
}

func (f *StorefrontFacade) ApplyFilters(ctx context.Context) {
	f.catalog.ApplyFilters(ctx)
}

func (f *StorefrontFacade) LoadMore(ctx context.Context) {
	f.catalog.LoadMore(ctx)
}

func (f *StorefrontFacade) AddToCart(id int64) {
	f.catalog.AddToCart(id)
}

func (f *StorefrontFacade) RenderCart(ctx context.Context) {
	f.cart.Render(ctx)
}

func (f *StorefrontFacade) RemoveFromCart(ctx context.Context, id int64) {
	f.cart.Remove(ctx, id)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, form cart.Form) {
	f.cart.Checkout(ctx, form)
}

func (f *StorefrontFacade) ListOrders(ctx context.Context) {
	f.orders.List(ctx)
}

func (f *StorefrontFacade) EditOrder(ctx context.Context, id int64) {
	f.orders.Edit(ctx, id)
}

func (f *StorefrontFacade) DeleteOrder(ctx context.Context, id int64) {
	f.orders.Delete(ctx, id)
}
