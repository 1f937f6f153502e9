package users

import "github.com/streetify/streetify-backend/pkg/types"

// Action is a serializable users-slice event consumed by Reduce.
type Action interface {
	Name() string
	isUsersAction()
}

// SetUser records the signed-in profile; nil signs out without touching
// addresses.
type SetUser struct {
	User *types.User `json:"user"`
}

// UpdateProfile patches profile fields; nil fields keep their value.
type UpdateProfile struct {
	DisplayName *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	ProfilePic  *string `json:"profile_pic,omitempty"`
}

// UpdatePreferences replaces the preferences wholesale, unlike the
// field-by-field profile patch.
type UpdatePreferences struct {
	Preferences types.UserPreferences `json:"preferences"`
}

// AddAddress appends a saved address.
type AddAddress struct {
	Address types.Address `json:"address"`
}

// RemoveAddress deletes the saved address with the given id.
type RemoveAddress struct {
	AddressID string `json:"address_id"`
}

// ToggleFollowVendor adds the vendor to the following list, or removes it if
// already present.
type ToggleFollowVendor struct {
	VendorID string `json:"vendor_id"`
}

// ClearUser resets the whole slice, addresses included.
type ClearUser struct{}

// SetLoading flips the slice-local loading flag.
type SetLoading struct {
	Loading bool `json:"loading"`
}

// SetError records a slice-local error message; nil clears it.
type SetError struct {
	Err *string `json:"error"`
}

func (SetUser) Name() string            { return "users/setUser" }
func (UpdateProfile) Name() string      { return "users/updateProfile" }
func (UpdatePreferences) Name() string  { return "users/updatePreferences" }
func (AddAddress) Name() string         { return "users/addAddress" }
func (RemoveAddress) Name() string      { return "users/removeAddress" }
func (ToggleFollowVendor) Name() string { return "users/toggleFollowVendor" }
func (ClearUser) Name() string          { return "users/clearUser" }
func (SetLoading) Name() string         { return "users/setLoading" }
func (SetError) Name() string           { return "users/setError" }

func (SetUser) isUsersAction()            {}
func (UpdateProfile) isUsersAction()      {}
func (UpdatePreferences) isUsersAction()  {}
func (AddAddress) isUsersAction()         {}
func (RemoveAddress) isUsersAction()      {}
func (ToggleFollowVendor) isUsersAction() {}
func (ClearUser) isUsersAction()          {}
func (SetLoading) isUsersAction()         {}
func (SetError) isUsersAction()           {}
