package vendors

import (
	"context"
	"fmt"

	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/types"
)

// Store is the slice of the state container this service needs.
type Store interface {
	Vendors() State
	DispatchVendors(ctx context.Context, action Action)
}

type catalogFetcher interface {
	GetNearbyVendors(ctx context.Context, point types.GeoPoint) ([]types.Vendor, error)
	GetVendorsWithFilters(ctx context.Context, filter types.VendorFilter) ([]types.Vendor, error)
}

type catalogCacher interface {
	SaveVendors(ctx context.Context, vendors []types.Vendor) error
}

// Service exposes catalog operations on top of the state store.
type Service interface {
	Catalog(ctx context.Context) []types.Vendor
	Nearby(ctx context.Context) []types.Vendor
	SelectedVendor(ctx context.Context) *types.Vendor
	Select(ctx context.Context, vendorID string) (*types.Vendor, error)
	ClearSelection(ctx context.Context)
	Filters(ctx context.Context) types.VendorFilter
	UpdateFilters(ctx context.Context, patch types.VendorFilterPatch) types.VendorFilter
	RefreshNearby(ctx context.Context, point types.GeoPoint) ([]types.Vendor, error)
	Search(ctx context.Context) ([]types.Vendor, error)
	ReplaceMenu(ctx context.Context, vendorID string, menu []types.MenuItem) error
	SetRating(ctx context.Context, vendorID string, rating float64, totalRatings int) error
	ToggleAvailability(ctx context.Context, vendorID, menuItemID string, isAvailable bool) error
}

type service struct {
	store   Store
	backend catalogFetcher
	cache   catalogCacher
	logg    *logger.Logger
}

// NewService builds a vendors service. The catalog cache is optional.
func NewService(store Store, fetcher catalogFetcher, cache catalogCacher, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("state store required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("backend client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, backend: fetcher, cache: cache, logg: logg}, nil
}

func (s *service) Catalog(ctx context.Context) []types.Vendor {
	return s.store.Vendors().Vendors
}

func (s *service) Nearby(ctx context.Context) []types.Vendor {
	return s.store.Vendors().NearbyVendors
}

func (s *service) SelectedVendor(ctx context.Context) *types.Vendor {
	return s.store.Vendors().SelectedVendor()
}

// Select records the vendor id. Selecting an id missing from the catalog is a
// validation error at the service boundary even though the reducer records
// any id.
func (s *service) Select(ctx context.Context, vendorID string) (*types.Vendor, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	state := s.store.Vendors()
	found := false
	for _, v := range state.Vendors {
		if v.ID == vendorID {
			found = true
			break
		}
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
	}

	s.store.DispatchVendors(ctx, SetSelectedVendor{VendorID: &vendorID})
	return s.store.Vendors().SelectedVendor(), nil
}

func (s *service) ClearSelection(ctx context.Context) {
	s.store.DispatchVendors(ctx, SetSelectedVendor{VendorID: nil})
}

func (s *service) Filters(ctx context.Context) types.VendorFilter {
	return s.store.Vendors().Filters
}

func (s *service) UpdateFilters(ctx context.Context, patch types.VendorFilterPatch) types.VendorFilter {
	s.store.DispatchVendors(ctx, UpdateFilters{Patch: patch})
	return s.store.Vendors().Filters
}

// RefreshNearby fetches vendors around the point and replaces both the nearby
// mirror and, through the cache, the offline copy.
func (s *service) RefreshNearby(ctx context.Context, point types.GeoPoint) ([]types.Vendor, error) {
	s.store.DispatchVendors(ctx, SetLoading{Loading: true})
	defer s.store.DispatchVendors(ctx, SetLoading{Loading: false})

	found, err := s.backend.GetNearbyVendors(ctx, point)
	if err != nil {
		msg := err.Error()
		s.store.DispatchVendors(ctx, SetError{Err: &msg})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch nearby vendors")
	}

	s.store.DispatchVendors(ctx, SetError{Err: nil})
	s.store.DispatchVendors(ctx, SetNearbyVendors{Vendors: found})
	s.cacheVendors(ctx, found)
	return found, nil
}

// Search fetches the catalog using the current filters and replaces it
// wholesale.
func (s *service) Search(ctx context.Context) ([]types.Vendor, error) {
	filters := s.store.Vendors().Filters

	s.store.DispatchVendors(ctx, SetLoading{Loading: true})
	defer s.store.DispatchVendors(ctx, SetLoading{Loading: false})

	found, err := s.backend.GetVendorsWithFilters(ctx, filters)
	if err != nil {
		msg := err.Error()
		s.store.DispatchVendors(ctx, SetError{Err: &msg})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search vendors")
	}

	s.store.DispatchVendors(ctx, SetError{Err: nil})
	s.store.DispatchVendors(ctx, SetVendors{Vendors: found})
	s.cacheVendors(ctx, found)
	return found, nil
}

func (s *service) ReplaceMenu(ctx context.Context, vendorID string, menu []types.MenuItem) error {
	if err := s.requireVendor(vendorID); err != nil {
		return err
	}
	s.store.DispatchVendors(ctx, UpdateVendorMenu{VendorID: vendorID, Menu: menu})
	return nil
}

func (s *service) SetRating(ctx context.Context, vendorID string, rating float64, totalRatings int) error {
	if err := s.requireVendor(vendorID); err != nil {
		return err
	}
	if rating < 0 || rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
	}
	if totalRatings < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "total ratings cannot be negative")
	}
	s.store.DispatchVendors(ctx, UpdateVendorRating{VendorID: vendorID, Rating: rating, TotalRatings: totalRatings})
	return nil
}

func (s *service) ToggleAvailability(ctx context.Context, vendorID, menuItemID string, isAvailable bool) error {
	if err := s.requireVendor(vendorID); err != nil {
		return err
	}
	if menuItemID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	s.store.DispatchVendors(ctx, ToggleItemAvailability{VendorID: vendorID, MenuItemID: menuItemID, IsAvailable: isAvailable})
	return nil
}

func (s *service) requireVendor(vendorID string) error {
	if vendorID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	for _, v := range s.store.Vendors().Vendors {
		if v.ID == vendorID {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
}

func (s *service) cacheVendors(ctx context.Context, vendors []types.Vendor) {
	if s.cache == nil || len(vendors) == 0 {
		return
	}
	if err := s.cache.SaveVendors(ctx, vendors); err != nil {
		s.logg.Error(ctx, "cache vendors", err)
	}
}
