package types

// User is the authenticated profile mirrored from the backend.
type User struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       *string         `json:"phone,omitempty"`
	Bio         *string         `json:"bio,omitempty"`
	ProfilePic  *string         `json:"profile_pic,omitempty"`
	Preferences UserPreferences `json:"preferences"`
	Following   []string        `json:"following"`
	Followers   []string        `json:"followers"`
}

// UserPreferences carries the notification/appearance/location flags plus the
// taste profile collected at onboarding. Updates replace the whole struct.
type UserPreferences struct {
	Notifications        bool     `json:"notifications"`
	DarkMode             bool     `json:"dark_mode"`
	LocationEnabled      bool     `json:"location_enabled"`
	DietaryRestrictions  []string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences   []string `json:"cuisine_preferences,omitempty"`
	SpiceLevelPreference *int     `json:"spice_level_preference,omitempty"`
}

// Clone returns a deep copy safe to hand to subscribers.
func (u User) Clone() User {
	out := u
	out.Phone = clonePtr(u.Phone)
	out.Bio = clonePtr(u.Bio)
	out.ProfilePic = clonePtr(u.ProfilePic)
	out.Preferences = u.Preferences.Clone()
	out.Following = cloneStrings(u.Following)
	out.Followers = cloneStrings(u.Followers)
	return out
}

// Clone returns a deep copy of the preferences.
func (p UserPreferences) Clone() UserPreferences {
	out := p
	out.DietaryRestrictions = cloneStrings(p.DietaryRestrictions)
	out.CuisinePreferences = cloneStrings(p.CuisinePreferences)
	out.SpiceLevelPreference = clonePtr(p.SpiceLevelPreference)
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
