package orders

import (
	"github.com/shopspring/decimal"
	"github.com/streetify/streetify-backend/pkg/types"
)

// Cart holds the active selection. Items are keyed by MenuItemID; VendorID is
// non-nil exactly when Items is non-empty.
type Cart struct {
	VendorID    *string           `json:"vendor_id"`
	Items       []types.OrderItem `json:"items"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}

// State is the orders slice: the cart, the order in flight, and past orders
// most-recent first.
type State struct {
	Cart         Cart          `json:"cart"`
	CurrentOrder *types.Order  `json:"current_order"`
	History      []types.Order `json:"history"`
	Loading      bool          `json:"loading"`
	Err          *string       `json:"error"`
}

// NewState returns the empty slice state.
func NewState() State {
	return State{Cart: emptyCart()}
}

func emptyCart() Cart {
	return Cart{TotalAmount: decimal.Zero}
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a deep copy of the cart.
func (c Cart) Clone() Cart {
	out := c
	if c.VendorID != nil {
		id := *c.VendorID
		out.VendorID = &id
	}
	out.Items = types.CloneOrderItems(c.Items)
	return out
}

// Clone returns a deep copy of the slice state.
func (s State) Clone() State {
	out := s
	out.Cart = s.Cart.Clone()
	if s.CurrentOrder != nil {
		order := s.CurrentOrder.Clone()
		out.CurrentOrder = &order
	}
	out.History = types.CloneOrders(s.History)
	if s.Err != nil {
		msg := *s.Err
		out.Err = &msg
	}
	return out
}

func cartTotal(items []types.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
