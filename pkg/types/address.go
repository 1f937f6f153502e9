package types

import "github.com/streetify/streetify-backend/pkg/enums"

// Address is a saved delivery location owned by the current user.
type Address struct {
	ID        string            `json:"id"`
	Type      enums.AddressType `json:"type"`
	Address   string            `json:"address"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Landmark  *string           `json:"landmark,omitempty"`
}

// Clone returns a copy with no shared pointers.
func (a Address) Clone() Address {
	out := a
	out.Landmark = clonePtr(a.Landmark)
	return out
}

func cloneAddresses(in []Address) []Address {
	if in == nil {
		return nil
	}
	out := make([]Address, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
