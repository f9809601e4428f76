package test

import (
	"sync"

	"github.com/example/shopfront/internal/domain/model"
)

// CatalogViewRecorder captures everything the catalog controller renders.
type CatalogViewRecorder struct {
	mu          sync.Mutex
	Cards       []model.Good
	Categories  []string
	Selected    map[string]bool
	LoadMore    bool
	Empty       string
	Suggestions []string
	SuggestHid  bool
}

func (v *CatalogViewRecorder) RenderGoods(goods []model.Good, reset bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if reset {
		v.Cards = nil
	}
	v.Cards = append(v.Cards, goods...)
}

func (v *CatalogViewRecorder) ClearGoods() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Cards = nil
}

func (v *CatalogViewRecorder) RenderCategories(categories []string, selected map[string]bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Categories = categories
	v.Selected = selected
}

func (v *CatalogViewRecorder) SetLoadMoreVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.LoadMore = visible
}

func (v *CatalogViewRecorder) ShowEmpty(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Empty = message
}

func (v *CatalogViewRecorder) HideEmpty() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Empty = ""
}

func (v *CatalogViewRecorder) ShowSuggestions(items []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Suggestions = items
	v.SuggestHid = false
}

func (v *CatalogViewRecorder) HideSuggestions() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Suggestions = nil
	v.SuggestHid = true
}

// CardCount returns how many cards are currently rendered.
func (v *CatalogViewRecorder) CardCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.Cards)
}

// CurrentSuggestions returns the rendered suggestion list.
func (v *CatalogViewRecorder) CurrentSuggestions() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.Suggestions))
	copy(out, v.Suggestions)
	return out
}

// CartViewRecorder captures cart renders.
type CartViewRecorder struct {
	mu            sync.Mutex
	Items         []model.Good
	Total         float64
	EmptyShown    bool
	PaymentShown  bool
	RenderedTimes int
}

func (v *CartViewRecorder) RenderItems(goods []model.Good, total float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Items = goods
	v.Total = total
	v.EmptyShown = false
	v.RenderedTimes++
}

func (v *CartViewRecorder) ShowEmpty() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Items = nil
	v.Total = 0
	v.EmptyShown = true
}

func (v *CartViewRecorder) ShowPayment() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.PaymentShown = true
}

// OrdersViewRecorder captures order table renders.
type OrdersViewRecorder struct {
	mu    sync.Mutex
	Table []OrderRowRecord
	Empty string
}

// OrderRowRecord mirrors one rendered order row.
type OrderRowRecord struct {
	Order       model.Order
	Composition string
	Total       float64
}

func (v *OrdersViewRecorder) RenderOrders(orders []model.Order, compositions []string, totals []float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Table = nil
	for i, o := range orders {
		row := OrderRowRecord{Order: o}
		if i < len(compositions) {
			row.Composition = compositions[i]
		}
		if i < len(totals) {
			row.Total = totals[i]
		}
		v.Table = append(v.Table, row)
	}
	v.Empty = ""
}

func (v *OrdersViewRecorder) ShowEmpty(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Table = nil
	v.Empty = message
}
