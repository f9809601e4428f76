package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/example/shopfront/internal/domain/model"
)

// SortKey selects the ordering of rendered cards.
type SortKey string

const (
	SortRatingAsc  SortKey = "rating:asc"
	SortRatingDesc SortKey = "rating:desc"
	SortPriceAsc   SortKey = "price:asc"
	SortPriceDesc  SortKey = "price:desc"
)

// ParseSortKey maps user input onto a known sort key, falling back to the
// default rating ordering.
func ParseSortKey(v string) SortKey {
	switch SortKey(v) {
	case SortRatingAsc, SortRatingDesc, SortPriceAsc, SortPriceDesc:
		return SortKey(v)
	}
	return SortRatingDesc
}

// Filters are the local, page-scoped constraints applied after a fetch.
type Filters struct {
	MinPrice     *float64
	MaxPrice     *float64
	DiscountOnly bool
	Categories   map[string]bool
}

// Apply filters one page of goods. Price bounds compare against the
// effective price; category membership uses the main category, matching
// how the checkbox list is derived.
func (f Filters) Apply(goods []model.Good) []model.Good {
	out := make([]model.Good, 0, len(goods))
	for _, g := range goods {
		if len(f.Categories) > 0 && !f.Categories[g.MainCategory] {
			continue
		}
		price := g.EffectivePrice()
		if f.MinPrice != nil && price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && price > *f.MaxPrice {
			continue
		}
		if f.DiscountOnly && !g.HasDiscount() {
			continue
		}
		out = append(out, g)
	}
	return out
}

// SortGoods orders a copy of goods by the given key. Ties keep an
// unspecified relative order.
func SortGoods(goods []model.Good, key SortKey) []model.Good {
	out := make([]model.Good, len(goods))
	copy(out, goods)

	switch key {
	case SortRatingAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	case SortRatingDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortPriceAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].EffectivePrice() < out[j].EffectivePrice() })
	case SortPriceDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].EffectivePrice() > out[j].EffectivePrice() })
	}
	return out
}

// ParseNumber reads a price bound typed by the user. Comma decimal
// separators are accepted; blank or unparseable input disables the bound.
func ParseNumber(v string) *float64 {
	trimmed := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
	if trimmed == "" {
		return nil
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &n
}

// distinctCategories derives the checkbox list from every good fetched so
// far, first-seen order preserved.
func distinctCategories(goods []model.Good) []string {
	seen := make(map[string]bool, len(goods))
	var out []string
	for _, g := range goods {
		if g.MainCategory == "" || seen[g.MainCategory] {
			continue
		}
		seen[g.MainCategory] = true
		out = append(out, g.MainCategory)
	}
	return out
}
