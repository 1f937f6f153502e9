package vendors

import "github.com/streetify/streetify-backend/pkg/types"

// Reduce applies one action and returns the next state. Input it cannot apply
// returns the state unchanged; per-vendor mutations touch only the canonical
// catalog, never the nearby mirror.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetVendors:
		next := s.Clone()
		next.Vendors = types.CloneVendors(a.Vendors)
		return next
	case SetSelectedVendor:
		next := s.Clone()
		if a.VendorID == nil {
			next.SelectedVendorID = nil
		} else {
			id := *a.VendorID
			next.SelectedVendorID = &id
		}
		return next
	case SetNearbyVendors:
		next := s.Clone()
		next.NearbyVendors = types.CloneVendors(a.Vendors)
		return next
	case UpdateFilters:
		next := s.Clone()
		next.Filters = next.Filters.Merge(a.Patch)
		return next
	case UpdateVendorMenu:
		return mutateVendor(s, a.VendorID, func(v *types.Vendor) {
			v.Menu = types.CloneMenu(a.Menu)
		})
	case UpdateVendorRating:
		if a.Rating < 0 || a.TotalRatings < 0 {
			return s
		}
		return mutateVendor(s, a.VendorID, func(v *types.Vendor) {
			v.Rating = a.Rating
			v.TotalRatings = a.TotalRatings
		})
	case ToggleItemAvailability:
		return mutateVendor(s, a.VendorID, func(v *types.Vendor) {
			for i := range v.Menu {
				if v.Menu[i].ID == a.MenuItemID {
					v.Menu[i].IsAvailable = a.IsAvailable
				}
			}
		})
	case ClearVendors:
		return NewState()
	case SetLoading:
		next := s.Clone()
		next.Loading = a.Loading
		return next
	case SetError:
		next := s.Clone()
		if a.Err == nil {
			next.Err = nil
		} else {
			msg := *a.Err
			next.Err = &msg
		}
		return next
	default:
		return s
	}
}

// mutateVendor applies fn to the catalog entry with the given id. An unknown
// id is a no-op.
func mutateVendor(s State, vendorID string, fn func(*types.Vendor)) State {
	found := false
	for _, v := range s.Vendors {
		if v.ID == vendorID {
			found = true
			break
		}
	}
	if !found {
		return s
	}

	next := s.Clone()
	for i := range next.Vendors {
		if next.Vendors[i].ID == vendorID {
			fn(&next.Vendors[i])
		}
	}
	return next
}
