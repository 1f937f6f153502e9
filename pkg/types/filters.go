package types

import "github.com/shopspring/decimal"

// PriceRange bounds the menu prices a buyer wants to see.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// VendorFilter is pure display/query criteria for the vendor catalog.
type VendorFilter struct {
	Cuisine    []string   `json:"cuisine"`
	PriceRange PriceRange `json:"price_range"`
	Rating     float64    `json:"rating"`
	Distance   float64    `json:"distance"`
	IsOpen     bool       `json:"is_open"`
}

// DefaultVendorFilter matches the app's initial catalog view.
func DefaultVendorFilter() VendorFilter {
	return VendorFilter{
		Cuisine:    []string{},
		PriceRange: PriceRange{Min: decimal.Zero, Max: decimal.NewFromInt(1000)},
		Rating:     0,
		Distance:   5,
		IsOpen:     false,
	}
}

// VendorFilterPatch updates only the provided keys; nil fields keep the
// current value (shallow merge, unlike preference updates which replace).
type VendorFilterPatch struct {
	Cuisine    *[]string   `json:"cuisine,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	Rating     *float64    `json:"rating,omitempty"`
	Distance   *float64    `json:"distance,omitempty"`
	IsOpen     *bool       `json:"is_open,omitempty"`
}

// Merge applies the patch over the receiver and returns the result.
func (f VendorFilter) Merge(patch VendorFilterPatch) VendorFilter {
	out := f
	out.Cuisine = cloneStrings(f.Cuisine)
	if patch.Cuisine != nil {
		out.Cuisine = cloneStrings(*patch.Cuisine)
	}
	if patch.PriceRange != nil {
		out.PriceRange = *patch.PriceRange
	}
	if patch.Rating != nil {
		out.Rating = *patch.Rating
	}
	if patch.Distance != nil {
		out.Distance = *patch.Distance
	}
	if patch.IsOpen != nil {
		out.IsOpen = *patch.IsOpen
	}
	return out
}

// Clone returns a copy with its own cuisine slice.
func (f VendorFilter) Clone() VendorFilter {
	out := f
	out.Cuisine = cloneStrings(f.Cuisine)
	return out
}
