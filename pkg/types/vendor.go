package types

import "github.com/shopspring/decimal"

// VendorLocation pins a vendor to the map plus a display address.
type VendorLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// DayHours is the open/close window for a single weekday.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OperatingHours maps weekday name to its open/close window.
type OperatingHours map[string]DayHours

// Vendor is a street-food seller with a menu, location, and rating.
// Rating and TotalRatings back the same average and must be written together.
type Vendor struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Location       VendorLocation `json:"location"`
	Cuisine        []string       `json:"cuisine"`
	Rating         float64        `json:"rating"`
	TotalRatings   int            `json:"total_ratings"`
	Photos         []string       `json:"photos"`
	Menu           []MenuItem     `json:"menu"`
	OperatingHours OperatingHours `json:"operating_hours"`
	IsOpen         bool           `json:"is_open"`
}

// MenuItem belongs to exactly one vendor.
type MenuItem struct {
	ID                   string                `json:"id"`
	Name                 string                `json:"name"`
	Description          string                `json:"description"`
	Price                decimal.Decimal       `json:"price"`
	Photo                *string               `json:"photo,omitempty"`
	CustomizationOptions []CustomizationOption `json:"customization_options,omitempty"`
	IsAvailable          bool                  `json:"is_available"`
	Category             string                `json:"category"`
}

// CustomizationOption groups priced sub-options under a label.
type CustomizationOption struct {
	Name    string         `json:"name"`
	Options []PricedOption `json:"options"`
}

// PricedOption is a single selectable customization.
type PricedOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Clone returns a deep copy of the vendor and its menu.
func (v Vendor) Clone() Vendor {
	out := v
	out.Cuisine = cloneStrings(v.Cuisine)
	out.Photos = cloneStrings(v.Photos)
	out.Menu = CloneMenu(v.Menu)
	if v.OperatingHours != nil {
		out.OperatingHours = make(OperatingHours, len(v.OperatingHours))
		for day, hours := range v.OperatingHours {
			out.OperatingHours[day] = hours
		}
	}
	return out
}

// Clone returns a deep copy of the menu item.
func (m MenuItem) Clone() MenuItem {
	out := m
	out.Photo = clonePtr(m.Photo)
	if m.CustomizationOptions != nil {
		out.CustomizationOptions = make([]CustomizationOption, len(m.CustomizationOptions))
		for i, opt := range m.CustomizationOptions {
			cloned := opt
			cloned.Options = make([]PricedOption, len(opt.Options))
			copy(cloned.Options, opt.Options)
			out.CustomizationOptions[i] = cloned
		}
	}
	return out
}

// CloneMenu deep-copies a menu slice.
func CloneMenu(in []MenuItem) []MenuItem {
	if in == nil {
		return nil
	}
	out := make([]MenuItem, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// CloneVendors deep-copies a vendor slice.
func CloneVendors(in []Vendor) []Vendor {
	if in == nil {
		return nil
	}
	out := make([]Vendor, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
