package users

import "github.com/streetify/streetify-backend/pkg/types"

// State is the users slice. IsAuthenticated tracks CurrentUser presence.
type State struct {
	CurrentUser     *types.User     `json:"current_user"`
	IsAuthenticated bool            `json:"is_authenticated"`
	SavedAddresses  []types.Address `json:"saved_addresses"`
	Loading         bool            `json:"loading"`
	Err             *string         `json:"error"`
}

// NewState returns the empty slice state.
func NewState() State {
	return State{}
}

// Clone returns a deep copy of the slice state.
func (s State) Clone() State {
	out := s
	if s.CurrentUser != nil {
		user := s.CurrentUser.Clone()
		out.CurrentUser = &user
	}
	if s.SavedAddresses != nil {
		out.SavedAddresses = make([]types.Address, len(s.SavedAddresses))
		for i := range s.SavedAddresses {
			out.SavedAddresses[i] = s.SavedAddresses[i].Clone()
		}
	}
	if s.Err != nil {
		msg := *s.Err
		out.Err = &msg
	}
	return out
}
