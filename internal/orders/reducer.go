package orders

import "github.com/streetify/streetify-backend/pkg/types"

// Reduce applies one action and returns the next state. It never mutates its
// input and never fails: input it cannot apply returns the state unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case AddToCart:
		return reduceAddToCart(s, a)
	case RemoveFromCart:
		return reduceRemoveFromCart(s, a)
	case UpdateItemQuantity:
		return reduceUpdateItemQuantity(s, a)
	case ClearCart:
		next := s.Clone()
		next.Cart = emptyCart()
		return next
	case SetCurrentOrder:
		next := s.Clone()
		if a.Order == nil {
			next.CurrentOrder = nil
		} else {
			order := a.Order.Clone()
			next.CurrentOrder = &order
		}
		return next
	case AddToOrderHistory:
		next := s.Clone()
		next.History = append([]types.Order{a.Order.Clone()}, next.History...)
		return next
	case UpdateOrderStatus:
		return reduceUpdateOrderStatus(s, a)
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

func reduceAddToCart(s State, a AddToCart) State {
	if a.VendorID == "" || a.Item.MenuItemID == "" || a.Item.Quantity <= 0 {
		return s
	}
	if !s.Cart.IsEmpty() && s.Cart.VendorID != nil && *s.Cart.VendorID != a.VendorID {
		return s
	}

	next := s.Clone()
	if next.Cart.IsEmpty() {
		vendorID := a.VendorID
		next.Cart.VendorID = &vendorID
	}

	merged := false
	for i := range next.Cart.Items {
		if next.Cart.Items[i].MenuItemID == a.Item.MenuItemID {
			next.Cart.Items[i].Quantity += a.Item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		next.Cart.Items = append(next.Cart.Items, a.Item.Clone())
	}

	next.Cart.TotalAmount = cartTotal(next.Cart.Items)
	return next
}

func reduceRemoveFromCart(s State, a RemoveFromCart) State {
	next := s.Clone()
	items := next.Cart.Items[:0]
	for _, item := range next.Cart.Items {
		if item.MenuItemID != a.MenuItemID {
			items = append(items, item)
		}
	}
	next.Cart.Items = items
	if len(next.Cart.Items) == 0 {
		next.Cart = emptyCart()
		return next
	}
	next.Cart.TotalAmount = cartTotal(next.Cart.Items)
	return next
}

func reduceUpdateItemQuantity(s State, a UpdateItemQuantity) State {
	if a.Quantity <= 0 {
		return reduceRemoveFromCart(s, RemoveFromCart{MenuItemID: a.MenuItemID})
	}
	next := s.Clone()
	for i := range next.Cart.Items {
		if next.Cart.Items[i].MenuItemID == a.MenuItemID {
			next.Cart.Items[i].Quantity = a.Quantity
		}
	}
	next.Cart.TotalAmount = cartTotal(next.Cart.Items)
	return next
}

func reduceUpdateOrderStatus(s State, a UpdateOrderStatus) State {
	next := s.Clone()
	if next.CurrentOrder != nil && next.CurrentOrder.ID == a.OrderID {
		next.CurrentOrder.Status = a.Status
		if !a.At.IsZero() {
			next.CurrentOrder.UpdatedAt = a.At
		}
	}
	for i := range next.History {
		if next.History[i].ID == a.OrderID {
			next.History[i].Status = a.Status
			if !a.At.IsZero() {
				next.History[i].UpdatedAt = a.At
			}
		}
	}
	return next
}
