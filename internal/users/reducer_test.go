package users

import (
	"testing"

	"github.com/streetify/streetify-backend/pkg/enums"
	"github.com/streetify/streetify-backend/pkg/types"
)

func signedIn() State {
	user := types.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Following: []string{"v1"}}
	return Reduce(NewState(), SetUser{User: &user})
}

func TestSetUserTracksAuthentication(t *testing.T) {
	s := signedIn()
	if !s.IsAuthenticated || s.CurrentUser == nil {
		t.Fatalf("state = %+v", s)
	}

	s = Reduce(s, SetUser{User: nil})
	if s.IsAuthenticated || s.CurrentUser != nil {
		t.Fatal("nil user should sign out")
	}
}

func TestUpdateProfilePatchesFields(t *testing.T) {
	s := signedIn()
	bio := "street food hunter"
	s = Reduce(s, UpdateProfile{Bio: &bio})

	if s.CurrentUser.Bio == nil || *s.CurrentUser.Bio != bio {
		t.Fatalf("bio = %v", s.CurrentUser.Bio)
	}
	if s.CurrentUser.Name != "Ana" {
		t.Fatal("unpatched field changed")
	}

	name := "Ana María"
	patch := UpdateProfile{DisplayName: &name}
	if patch.Name() != "users/updateProfile" {
		t.Fatalf("action name = %q", patch.Name())
	}
	s = Reduce(s, patch)
	if s.CurrentUser.Name != name || *s.CurrentUser.Bio != bio {
		t.Fatal("second patch dropped earlier value")
	}
}

func TestUpdateProfileWithoutUserIsNoOp(t *testing.T) {
	s := NewState()
	name := "ghost"
	s = Reduce(s, UpdateProfile{DisplayName: &name})
	if s.CurrentUser != nil {
		t.Fatal("patch without a user should be a no-op")
	}
}

func TestUpdatePreferencesReplacesWholesale(t *testing.T) {
	s := signedIn()
	spice := 3
	s = Reduce(s, UpdatePreferences{Preferences: types.UserPreferences{
		Notifications:        true,
		DietaryRestrictions:  []string{"vegetarian"},
		SpiceLevelPreference: &spice,
	}})

	s = Reduce(s, UpdatePreferences{Preferences: types.UserPreferences{DarkMode: true}})

	prefs := s.CurrentUser.Preferences
	if !prefs.DarkMode {
		t.Fatal("new preferences not applied")
	}
	if prefs.Notifications || len(prefs.DietaryRestrictions) != 0 || prefs.SpiceLevelPreference != nil {
		t.Fatal("replace must drop fields missing from the new struct")
	}
}

func TestAddressLifecycle(t *testing.T) {
	s := signedIn()
	s = Reduce(s, AddAddress{Address: types.Address{ID: "a1", Type: enums.AddressTypeHome, Address: "Calle 1"}})
	s = Reduce(s, AddAddress{Address: types.Address{ID: "a2", Type: enums.AddressTypeWork, Address: "Calle 2"}})

	if len(s.SavedAddresses) != 2 {
		t.Fatalf("addresses = %+v", s.SavedAddresses)
	}

	s = Reduce(s, RemoveAddress{AddressID: "a1"})
	if len(s.SavedAddresses) != 1 || s.SavedAddresses[0].ID != "a2" {
		t.Fatalf("addresses = %+v", s.SavedAddresses)
	}

	s = Reduce(s, RemoveAddress{AddressID: "ghost"})
	if len(s.SavedAddresses) != 1 {
		t.Fatal("unknown id should be a no-op")
	}
}

func TestToggleFollowVendor(t *testing.T) {
	s := signedIn()

	s = Reduce(s, ToggleFollowVendor{VendorID: "v2"})
	if len(s.CurrentUser.Following) != 2 {
		t.Fatalf("following = %v", s.CurrentUser.Following)
	}

	s = Reduce(s, ToggleFollowVendor{VendorID: "v1"})
	if len(s.CurrentUser.Following) != 1 || s.CurrentUser.Following[0] != "v2" {
		t.Fatalf("following = %v", s.CurrentUser.Following)
	}
}

func TestClearUserResetsAddressesToo(t *testing.T) {
	s := signedIn()
	s = Reduce(s, AddAddress{Address: types.Address{ID: "a1", Type: enums.AddressTypeHome, Address: "Calle 1"}})

	s = Reduce(s, ClearUser{})
	if s.CurrentUser != nil || s.IsAuthenticated || len(s.SavedAddresses) != 0 {
		t.Fatalf("state = %+v", s)
	}
}

func TestSignOutKeepsAddressesButClearDoesNot(t *testing.T) {
	s := signedIn()
	s = Reduce(s, AddAddress{Address: types.Address{ID: "a1", Type: enums.AddressTypeHome, Address: "Calle 1"}})

	s = Reduce(s, SetUser{User: nil})
	if len(s.SavedAddresses) != 1 {
		t.Fatal("setUser(nil) should not drop saved addresses")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := signedIn()
	name := "Changed"
	_ = Reduce(s, UpdateProfile{DisplayName: &name})
	if s.CurrentUser.Name != "Ana" {
		t.Fatal("reduce mutated its input state")
	}
}
