package vendors

import "github.com/streetify/streetify-backend/pkg/types"

// Action is a serializable vendors-slice event consumed by Reduce.
type Action interface {
	Name() string
	isVendorsAction()
}

// SetVendors replaces the canonical catalog wholesale.
type SetVendors struct {
	Vendors []types.Vendor `json:"vendors"`
}

// SetSelectedVendor records the selected vendor id; nil clears the selection.
// An id absent from the catalog is still recorded, lookups just resolve to
// nothing until the catalog catches up.
type SetSelectedVendor struct {
	VendorID *string `json:"vendor_id"`
}

// SetNearbyVendors replaces the nearby mirror wholesale.
type SetNearbyVendors struct {
	Vendors []types.Vendor `json:"vendors"`
}

// UpdateFilters shallow-merges the patch over the current filters.
type UpdateFilters struct {
	Patch types.VendorFilterPatch `json:"patch"`
}

// UpdateVendorMenu replaces one vendor's menu in the canonical catalog.
type UpdateVendorMenu struct {
	VendorID string           `json:"vendor_id"`
	Menu     []types.MenuItem `json:"menu"`
}

// UpdateVendorRating writes a vendor's rating average and count together.
type UpdateVendorRating struct {
	VendorID     string  `json:"vendor_id"`
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"total_ratings"`
}

// ToggleItemAvailability sets one menu item's availability flag to the
// carried value, so redelivery is harmless.
type ToggleItemAvailability struct {
	VendorID    string `json:"vendor_id"`
	MenuItemID  string `json:"menu_item_id"`
	IsAvailable bool   `json:"is_available"`
}

// ClearVendors resets the slice to its initial state.
type ClearVendors struct{}

// SetLoading flips the slice-local loading flag.
type SetLoading struct {
	Loading bool `json:"loading"`
}

// SetError records a slice-local error message; nil clears it.
type SetError struct {
	Err *string `json:"error"`
}

func (SetVendors) Name() string             { return "vendors/setVendors" }
func (SetSelectedVendor) Name() string      { return "vendors/setSelectedVendor" }
func (SetNearbyVendors) Name() string       { return "vendors/setNearbyVendors" }
func (UpdateFilters) Name() string          { return "vendors/updateFilters" }
func (UpdateVendorMenu) Name() string       { return "vendors/updateVendorMenu" }
func (UpdateVendorRating) Name() string     { return "vendors/updateVendorRating" }
func (ToggleItemAvailability) Name() string { return "vendors/toggleItemAvailability" }
func (ClearVendors) Name() string           { return "vendors/clearVendors" }
func (SetLoading) Name() string             { return "vendors/setLoading" }
func (SetError) Name() string               { return "vendors/setError" }

func (SetVendors) isVendorsAction()             {}
func (SetSelectedVendor) isVendorsAction()      {}
func (SetNearbyVendors) isVendorsAction()       {}
func (UpdateFilters) isVendorsAction()          {}
func (UpdateVendorMenu) isVendorsAction()       {}
func (UpdateVendorRating) isVendorsAction()     {}
func (ToggleItemAvailability) isVendorsAction() {}
func (ClearVendors) isVendorsAction()           {}
func (SetLoading) isVendorsAction()             {}
func (SetError) isVendorsAction()               {}
