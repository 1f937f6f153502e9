package users

// Reduce applies one action and returns the next state. Profile mutations
// without a signed-in user are no-ops.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetUser:
		next := s.Clone()
		if a.User == nil {
			next.CurrentUser = nil
			next.IsAuthenticated = false
			return next
		}
		user := a.User.Clone()
		next.CurrentUser = &user
		next.IsAuthenticated = true
		return next
	case UpdateProfile:
		if s.CurrentUser == nil {
			return s
		}
		next := s.Clone()
		if a.DisplayName != nil {
			next.CurrentUser.Name = *a.DisplayName
		}
		if a.Phone != nil {
			phone := *a.Phone
			next.CurrentUser.Phone = &phone
		}
		if a.Bio != nil {
			bio := *a.Bio
			next.CurrentUser.Bio = &bio
		}
		if a.ProfilePic != nil {
			pic := *a.ProfilePic
			next.CurrentUser.ProfilePic = &pic
		}
		return next
	case UpdatePreferences:
		if s.CurrentUser == nil {
			return s
		}
		next := s.Clone()
		next.CurrentUser.Preferences = a.Preferences.Clone()
		return next
	case AddAddress:
		if a.Address.ID == "" {
			return s
		}
		next := s.Clone()
		next.SavedAddresses = append(next.SavedAddresses, a.Address.Clone())
		return next
	case RemoveAddress:
		next := s.Clone()
		kept := next.SavedAddresses[:0]
		for _, addr := range next.SavedAddresses {
			if addr.ID != a.AddressID {
				kept = append(kept, addr)
			}
		}
		next.SavedAddresses = kept
		return next
	case ToggleFollowVendor:
		if s.CurrentUser == nil || a.VendorID == "" {
			return s
		}
		next := s.Clone()
		following := next.CurrentUser.Following
		for i, id := range following {
			if id == a.VendorID {
				next.CurrentUser.Following = append(following[:i], following[i+1:]...)
				return next
			}
		}
		next.CurrentUser.Following = append(following, a.VendorID)
		return next
	case ClearUser:
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
