package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/example/shopfront/internal/domain/model"
	"github.com/example/shopfront/internal/domain/repository"
)

// Empty-state messages shown over the card grid.
const (
	msgNoMatches  = "No goods match your query"
	msgNoGoods    = "No goods to display"
	msgLoadFailed = "Failed to load goods, try again"
	msgKeyPrompt  = "Enter a valid API key to browse the catalog"
)

// state is the per-session catalog state. The accumulated goods cache
// grows monotonically between reset fetches and feeds only the category
// list; it is never re-sorted or deduplicated.
type state struct {
	page    int
	query   string
	sortKey SortKey
	filters Filters
	fetched []model.Good
}

// Controller owns the catalog page: paging, search, filters, sorting,
// debounced autocomplete and the add-to-cart action.
type Controller struct {
	api      API
	keys     repository.KeyStore
	cart     repository.CartStore
	view     View
	notifier Notifier
	logger   *slog.Logger

	perPage  int
	debounce time.Duration

	mu      sync.Mutex
	state   state
	loading bool

	acMu     sync.Mutex
	acTimer  *time.Timer
	acCancel context.CancelFunc
	acGen    uint64
}

// NewController constructs the catalog controller with default state.
func NewController(api API, keys repository.KeyStore, cart repository.CartStore, view View, notifier Notifier, perPage int, debounce time.Duration, logger *slog.Logger) *Controller {
	if perPage <= 0 {
		perPage = 8
	}
	return &Controller{
		api:      api,
		keys:     keys,
		cart:     cart,
		view:     view,
		notifier: notifier,
		logger:   logger,
		perPage:  perPage,
		debounce: debounce,
		state: state{
			page:    1,
			sortKey: SortRatingDesc,
			filters: Filters{Categories: make(map[string]bool)},
		},
	}
}

// LoadGoods runs one fetch cycle. A call arriving while another fetch is
// in flight is dropped, not queued, so overlapping completions can never
// render duplicate cards. reset starts over from page one and discards
// the accumulated cache.
func (c *Controller) LoadGoods(ctx context.Context, reset bool) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	if reset {
		c.state.page = 1
		c.state.fetched = nil
	}
	page := c.state.page
	query := c.state.query
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	if reset {
		c.view.ClearGoods()
	}

	goods, err := c.api.ListGoods(ctx, page, c.perPage, query)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.logger.Error("catalog fetch failed", slog.Int("page", page), slog.String("error", err.Error()))
		c.view.ShowEmpty(msgLoadFailed)
		return
	}

	c.mu.Lock()
	c.state.fetched = append(c.state.fetched, goods...)
	categories := distinctCategories(c.state.fetched)
	selected := make(map[string]bool, len(c.state.filters.Categories))
	for name, on := range c.state.filters.Categories {
		if on {
			selected[name] = true
		}
	}
	visible := SortGoods(c.state.filters.Apply(goods), c.state.sortKey)
	c.mu.Unlock()

	if page == 1 && len(goods) > 0 {
		c.view.RenderCategories(categories, selected)
	}

	c.view.RenderGoods(visible, reset)
	c.view.SetLoadMoreVisible(len(goods) >= c.perPage)

	if reset {
		if len(visible) == 0 {
			if query != "" {
				c.view.ShowEmpty(msgNoMatches)
			} else {
				c.view.ShowEmpty(msgNoGoods)
			}
		} else {
			c.view.HideEmpty()
		}
	}
}

// Search stores the trimmed query and starts a reset fetch.
func (c *Controller) Search(ctx context.Context, input string) {
	c.mu.Lock()
	c.state.query = strings.TrimSpace(input)
	c.mu.Unlock()

	c.view.HideSuggestions()
	c.LoadGoods(ctx, true)
}

// SetSort switches the sort key and re-runs a reset fetch.
func (c *Controller) SetSort(ctx context.Context, key SortKey) {
	c.mu.Lock()
	c.state.sortKey = key
	c.mu.Unlock()

	c.LoadGoods(ctx, true)
}

// SetPriceRange updates the price bounds without refetching; blank or
// unparseable input disables a bound.
func (c *Controller) SetPriceRange(minInput, maxInput string) {
	c.mu.Lock()
	c.state.filters.MinPrice = ParseNumber(minInput)
	c.state.filters.MaxPrice = ParseNumber(maxInput)
	c.mu.Unlock()
}

// SetDiscountOnly updates the discount-only flag without refetching.
func (c *Controller) SetDiscountOnly(on bool) {
	c.mu.Lock()
	c.state.filters.DiscountOnly = on
	c.mu.Unlock()
}

// ToggleCategory flips one category checkbox. The change takes effect on
// the next fetch, not reactively.
func (c *Controller) ToggleCategory(name string) {
	c.mu.Lock()
	if c.state.filters.Categories[name] {
		delete(c.state.filters.Categories, name)
	} else {
		c.state.filters.Categories[name] = true
	}
	c.mu.Unlock()
}

// ApplyFilters re-runs a reset fetch with the current filter set.
func (c *Controller) ApplyFilters(ctx context.Context) {
	c.LoadGoods(ctx, true)
}

// LoadMore advances to the next page and appends its cards.
func (c *Controller) LoadMore(ctx context.Context) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.state.page++
	c.mu.Unlock()

	c.LoadGoods(ctx, false)
}

// AddToCart stores the good id in the cart, skipping duplicates.
func (c *Controller) AddToCart(id int64) {
	c.cart.Add(id)
	c.notifier.Success("Good added to cart")
}

// SaveKey stores a new API credential after probing the store with it.
// A rejected key is cleared again so a bad credential never sticks.
func (c *Controller) SaveKey(ctx context.Context, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		c.notifier.Error("Enter an API key")
		return
	}

	c.keys.Set(token)
	if _, err := c.api.ListGoods(ctx, 1, 1, ""); err != nil {
		c.keys.Clear()
		c.notifier.Error("The API key was rejected by the store")
		c.view.ShowEmpty(msgKeyPrompt)
		return
	}

	c.notifier.Success("API key accepted by the store")
	c.view.HideSuggestions()
	c.LoadGoods(ctx, true)
}

// ClearKey removes the stored credential and blanks the catalog.
func (c *Controller) ClearKey() {
	c.keys.Clear()
	c.view.ClearGoods()
	c.view.ShowEmpty(msgKeyPrompt)
}

// Query returns the current free-text query.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.query
}
