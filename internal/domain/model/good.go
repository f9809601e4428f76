package model

import "encoding/json"

// Good describes a catalog product fetched from the store API.
// The client never mutates goods, it only caches fetched copies.
type Good struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	MainCategory  string   `json:"main_category"`
	SubCategory   string   `json:"sub_category"`
	ActualPrice   float64  `json:"actual_price"`
	DiscountPrice *float64 `json:"discount_price"`
	Rating        float64  `json:"rating"`
	ImageURL      string   `json:"image_url"`
}

// EffectivePrice returns the discount price when it is positive and lower
// than the actual price, otherwise the actual price. Missing values count
// as zero.
func (g Good) EffectivePrice() float64 {
	actual := g.ActualPrice
	if actual < 0 {
		actual = 0
	}
	if g.DiscountPrice != nil {
		if d := *g.DiscountPrice; d > 0 && d < actual {
			return d
		}
	}
	return actual
}

// HasDiscount reports whether the good carries a valid discount.
func (g Good) HasDiscount() bool {
	return g.DiscountPrice != nil && *g.DiscountPrice > 0 && *g.DiscountPrice < g.ActualPrice
}

// Category returns the most specific category label available.
func (g Good) Category() string {
	if g.SubCategory != "" {
		return g.SubCategory
	}
	return g.MainCategory
}

// UnmarshalJSON accepts either a bare good object or a {"good": {...}}
// wrapper, which the store API uses interchangeably for single-good
// responses.
func (g *Good) UnmarshalJSON(data []byte) error {
	type plain Good
	var wrapped struct {
		Good *plain `json:"good"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Good != nil {
		*g = Good(*wrapped.Good)
		return nil
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*g = Good(p)
	return nil
}
