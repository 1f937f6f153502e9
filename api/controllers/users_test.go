package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/streetify/streetify-backend/internal/users"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/types"
)

func TestMeReturnsSliceState(t *testing.T) {
	svc := &stubUsersService{state: users.State{
		CurrentUser:     &types.User{ID: "u1", Name: "Maria"},
		IsAuthenticated: true,
	}}
	handler := Me(svc, silentLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data users.State `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.IsAuthenticated || envelope.Data.CurrentUser.Name != "Maria" {
		t.Fatalf("unexpected state: %+v", envelope.Data)
	}
}

func TestMeUnauthenticated(t *testing.T) {
	svc := &stubUsersService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "not signed in")}
	handler := Me(svc, silentLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestUpdateProfilePassesPatch(t *testing.T) {
	svc := &stubUsersService{user: types.User{ID: "u1", Name: "Maria G"}}
	handler := UpdateProfile(svc, silentLogger())

	body := `{"name":"Maria G","bio":"street food hunter"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/me/profile", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastProfile.DisplayName == nil || *svc.lastProfile.DisplayName != "Maria G" {
		t.Fatalf("patch name not forwarded: %+v", svc.lastProfile)
	}
	if svc.lastProfile.Phone != nil {
		t.Fatal("absent fields must stay nil in the patch")
	}
}

func TestAddAddressCreated(t *testing.T) {
	svc := &stubUsersService{address: types.Address{ID: "a1", Address: "12 Mercado Lane"}}
	handler := AddAddress(svc, silentLogger())

	body := `{"type":"home","address":"12 Mercado Lane","latitude":19.43,"longitude":-99.13}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/me/addresses", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastAddress.Type != "home" {
		t.Fatalf("address type not forwarded: %+v", svc.lastAddress)
	}
}

func TestAddAddressRequiresFields(t *testing.T) {
	handler := AddAddress(&stubUsersService{}, silentLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/me/addresses", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestRemoveAddressForwardsID(t *testing.T) {
	svc := &stubUsersService{}
	router := chi.NewRouter()
	router.Delete("/me/addresses/{addressId}", RemoveAddress(svc, silentLogger()))

	req := httptest.NewRequest(http.MethodDelete, "/me/addresses/a1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.removedID != "a1" {
		t.Fatalf("service got address id %q", svc.removedID)
	}
}

func TestToggleFollowVendorForwardsID(t *testing.T) {
	svc := &stubUsersService{user: types.User{ID: "u1", Following: []string{"v1"}}}
	router := chi.NewRouter()
	router.Post("/me/following/{vendorId}", ToggleFollowVendor(svc, silentLogger()))

	req := httptest.NewRequest(http.MethodPost, "/me/following/v1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.followedID != "v1" {
		t.Fatalf("service got vendor id %q", svc.followedID)
	}
}
