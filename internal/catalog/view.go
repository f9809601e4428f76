package catalog

import (
	"context"

	"github.com/example/shopfront/internal/domain/model"
)

// View is the rendering surface the controller draws the catalog on.
type View interface {
	// RenderGoods shows the given cards, replacing the current ones when
	// reset is true and appending otherwise.
	RenderGoods(goods []model.Good, reset bool)
	// ClearGoods removes every rendered card.
	ClearGoods()
	// RenderCategories redraws the category checkbox list keeping the
	// selected set.
	RenderCategories(categories []string, selected map[string]bool)
	// SetLoadMoreVisible toggles the "load more" affordance.
	SetLoadMoreVisible(visible bool)
	// ShowEmpty displays an empty-state message over the card grid.
	ShowEmpty(message string)
	// HideEmpty removes the empty-state message.
	HideEmpty()
	// ShowSuggestions displays autocomplete suggestions.
	ShowSuggestions(items []string)
	// HideSuggestions removes the suggestion list.
	HideSuggestions()
}

// Notifier shows transient toast notifications.
type Notifier interface {
	Success(text string)
	Error(text string)
	Info(text string)
}

// API is the slice of the store client the catalog needs.
type API interface {
	ListGoods(ctx context.Context, page, perPage int, query string) ([]model.Good, error)
	Autocomplete(ctx context.Context, query string) ([]string, error)
}
