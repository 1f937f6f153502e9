package vendors

import "github.com/streetify/streetify-backend/pkg/types"

// State is the vendors slice. Vendors is the canonical catalog; NearbyVendors
// is a wholesale-refreshed mirror and never receives per-vendor mutations.
// Selection is an id reference; the snapshot is derived at read time.
type State struct {
	Vendors          []types.Vendor     `json:"vendors"`
	SelectedVendorID *string            `json:"selected_vendor_id"`
	NearbyVendors    []types.Vendor     `json:"nearby_vendors"`
	Filters          types.VendorFilter `json:"filters"`
	Loading          bool               `json:"loading"`
	Err              *string            `json:"error"`
}

// NewState returns the empty slice state with default filters.
func NewState() State {
	return State{Filters: types.DefaultVendorFilter()}
}

// SelectedVendor resolves the selected id against the canonical catalog. It
// returns nil when nothing is selected or the id is unknown.
func (s State) SelectedVendor() *types.Vendor {
	if s.SelectedVendorID == nil {
		return nil
	}
	for _, v := range s.Vendors {
		if v.ID == *s.SelectedVendorID {
			cloned := v.Clone()
			return &cloned
		}
	}
	return nil
}

// Clone returns a deep copy of the slice state.
func (s State) Clone() State {
	out := s
	out.Vendors = types.CloneVendors(s.Vendors)
	out.NearbyVendors = types.CloneVendors(s.NearbyVendors)
	out.Filters = s.Filters.Clone()
	if s.SelectedVendorID != nil {
		id := *s.SelectedVendorID
		out.SelectedVendorID = &id
	}
	if s.Err != nil {
		msg := *s.Err
		out.Err = &msg
	}
	return out
}
