package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/types"
)

type stubVendorsService struct {
	vendors       []types.Vendor
	selected      *types.Vendor
	filters       types.VendorFilter
	err           error
	lastPoint     types.GeoPoint
	lastSelect    string
	lastPatch     types.VendorFilterPatch
	lastRating    float64
	lastItemID    string
	lastAvailable bool
	cleared       bool
}

func (s *stubVendorsService) Catalog(ctx context.Context) []types.Vendor { return s.vendors }
func (s *stubVendorsService) Nearby(ctx context.Context) []types.Vendor  { return s.vendors }

func (s *stubVendorsService) SelectedVendor(ctx context.Context) *types.Vendor { return s.selected }

func (s *stubVendorsService) Select(ctx context.Context, vendorID string) (*types.Vendor, error) {
	s.lastSelect = vendorID
	return s.selected, s.err
}

func (s *stubVendorsService) ClearSelection(ctx context.Context) { s.cleared = true }

func (s *stubVendorsService) Filters(ctx context.Context) types.VendorFilter { return s.filters }

func (s *stubVendorsService) UpdateFilters(ctx context.Context, patch types.VendorFilterPatch) types.VendorFilter {
	s.lastPatch = patch
	return s.filters
}

func (s *stubVendorsService) RefreshNearby(ctx context.Context, point types.GeoPoint) ([]types.Vendor, error) {
	s.lastPoint = point
	return s.vendors, s.err
}

func (s *stubVendorsService) Search(ctx context.Context) ([]types.Vendor, error) {
	return s.vendors, s.err
}

func (s *stubVendorsService) ReplaceMenu(ctx context.Context, vendorID string, menu []types.MenuItem) error {
	return s.err
}

func (s *stubVendorsService) SetRating(ctx context.Context, vendorID string, rating float64, totalRatings int) error {
	s.lastRating = rating
	return s.err
}

func (s *stubVendorsService) ToggleAvailability(ctx context.Context, vendorID, menuItemID string, isAvailable bool) error {
	s.lastItemID = menuItemID
	s.lastAvailable = isAvailable
	return s.err
}

func TestVendorCatalogReturnsVendors(t *testing.T) {
	svc := &stubVendorsService{vendors: []types.Vendor{{ID: "v1", Name: "Taqueria Rosa"}}}
	handler := VendorCatalog(svc, silentLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []types.Vendor `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Taqueria Rosa" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestVendorSelectUnknown(t *testing.T) {
	svc := &stubVendorsService{err: pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")}
	router := chi.NewRouter()
	router.Post("/vendors/{vendorId}/select", VendorSelect(svc, silentLogger()))

	req := httptest.NewRequest(http.MethodPost, "/vendors/v9/select", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if svc.lastSelect != "v9" {
		t.Fatalf("vendor id not forwarded: %q", svc.lastSelect)
	}
}

func TestVendorRefreshNearbyForwardsPoint(t *testing.T) {
	svc := &stubVendorsService{vendors: []types.Vendor{{ID: "v1"}}}
	handler := VendorRefreshNearby(svc, silentLogger())

	body := `{"latitude":19.43,"longitude":-99.13}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/nearby/refresh", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastPoint.Latitude != 19.43 {
		t.Fatalf("point not forwarded: %+v", svc.lastPoint)
	}
}

func TestVendorRefreshNearbyBackendDown(t *testing.T) {
	svc := &stubVendorsService{err: pkgerrors.New(pkgerrors.CodeDependency, "backend unavailable")}
	handler := VendorRefreshNearby(svc, silentLogger())

	body := `{"latitude":19.43,"longitude":-99.13}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/nearby/refresh", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestVendorUpdateFiltersForwardsPatch(t *testing.T) {
	svc := &stubVendorsService{filters: types.DefaultVendorFilter()}
	handler := VendorUpdateFilters(svc, silentLogger())

	body := `{"rating":4.5,"is_open":true}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/vendors/filters", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastPatch.Rating == nil || *svc.lastPatch.Rating != 4.5 {
		t.Fatalf("rating patch not forwarded: %+v", svc.lastPatch)
	}
	if svc.lastPatch.Cuisine != nil {
		t.Fatal("absent fields must stay nil in the patch")
	}
}

func TestVendorSetRatingValidation(t *testing.T) {
	svc := &stubVendorsService{err: pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")}
	router := chi.NewRouter()
	router.Post("/vendors/{vendorId}/rating", VendorSetRating(svc, silentLogger()))

	body := `{"rating":9.5,"total_ratings":10}`
	req := httptest.NewRequest(http.MethodPost, "/vendors/v1/rating", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestVendorToggleItemAvailabilityForwardsValue(t *testing.T) {
	svc := &stubVendorsService{}
	router := chi.NewRouter()
	router.Post("/vendors/{vendorId}/menu/{menuItemId}/availability", VendorToggleItemAvailability(svc, silentLogger()))

	body := `{"is_available":false}`
	req := httptest.NewRequest(http.MethodPost, "/vendors/v1/menu/m1/availability", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastItemID != "m1" || svc.lastAvailable {
		t.Fatalf("availability input not forwarded: item=%q available=%v", svc.lastItemID, svc.lastAvailable)
	}
}

func TestVendorCachedCatalogFallback(t *testing.T) {
	cache := &stubVendorCache{vendors: []types.Vendor{{ID: "v1", Name: "Taqueria Rosa"}}}
	handler := VendorCachedCatalog(cache, silentLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors/cached", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

type stubVendorCache struct {
	vendors []types.Vendor
	err     error
}

func (s *stubVendorCache) CachedVendors(ctx context.Context) ([]types.Vendor, error) {
	return s.vendors, s.err
}
