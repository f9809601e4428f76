package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/example/shopfront/internal/domain/model"
	"github.com/example/shopfront/internal/orders"
)

// CatalogView renders the catalog as plain text.
type CatalogView struct {
	mu sync.Mutex
	w  io.Writer
}

// NewCatalogView builds a catalog renderer over w.
func NewCatalogView(w io.Writer) *CatalogView {
	return &CatalogView{w: w}
}

func (v *CatalogView) RenderGoods(goods []model.Good, reset bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if reset {
		fmt.Fprintln(v.w, "--- catalog ---")
	}
	for _, g := range goods {
		line := fmt.Sprintf("#%d %s (%s) %.2f", g.ID, g.Name, g.Category(), g.EffectivePrice())
		if g.HasDiscount() {
			line += fmt.Sprintf(" (was %.2f)", g.ActualPrice)
		}
		line += fmt.Sprintf(" rating %.1f", g.Rating)
		fmt.Fprintln(v.w, line)
	}
}

func (v *CatalogView) ClearGoods() {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, "--- catalog cleared ---")
}

func (v *CatalogView) RenderCategories(categories []string, selected map[string]bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	marked := make([]string, 0, len(categories))
	for _, c := range categories {
		if selected[c] {
			marked = append(marked, "[x] "+c)
		} else {
			marked = append(marked, "[ ] "+c)
		}
	}
	fmt.Fprintf(v.w, "categories: %s\n", strings.Join(marked, "  "))
}

func (v *CatalogView) SetLoadMoreVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if visible {
		fmt.Fprintln(v.w, "(more goods available: run `more`)")
	}
}

func (v *CatalogView) ShowEmpty(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, message)
}

func (v *CatalogView) HideEmpty() {}

func (v *CatalogView) ShowSuggestions(items []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, "suggestions: %s\n", strings.Join(items, ", "))
}

func (v *CatalogView) HideSuggestions() {}

// CartView renders the cart as plain text.
type CartView struct {
	mu sync.Mutex
	w  io.Writer
}

// NewCartView builds a cart renderer over w.
func NewCartView(w io.Writer) *CartView {
	return &CartView{w: w}
}

func (v *CartView) RenderItems(goods []model.Good, total float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, "--- cart ---")
	for _, g := range goods {
		fmt.Fprintf(v.w, "#%d %s %.2f\n", g.ID, g.Name, g.EffectivePrice())
	}
	fmt.Fprintf(v.w, "total: %.2f\n", total)
}

func (v *CartView) ShowEmpty() {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, "Your cart is empty")
}

func (v *CartView) ShowPayment() {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, "Payment details are required: card number, holder, expiry MM/YY and CVC")
}

// OrdersView renders the order history table as plain text.
type OrdersView struct {
	mu sync.Mutex
	w  io.Writer
}

// NewOrdersView builds an order history renderer over w.
func NewOrdersView(w io.Writer) *OrdersView {
	return &OrdersView{w: w}
}

func (v *OrdersView) RenderOrders(list []model.Order, compositions []string, totals []float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, "--- orders ---")
	for i, o := range list {
		composition := ""
		if i < len(compositions) {
			composition = compositions[i]
		}
		var total float64
		if i < len(totals) {
			total = totals[i]
		}
		fmt.Fprintf(v.w, "#%d %s | %s | %.2f | %s\n",
			o.ID, orders.FormatCreatedAt(o.CreatedAt), composition, total, orders.DeliverySlot(o))
	}
}

func (v *OrdersView) ShowEmpty(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, message)
}
