package types

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/streetify/streetify-backend/pkg/enums"
)

// OrderItem is one cart line, keyed by MenuItemID.
type OrderItem struct {
	MenuItemID     string            `json:"menu_item_id"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations,omitempty"`
	Price          decimal.Decimal   `json:"price"`
}

// LineTotal returns price multiplied by quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone returns a copy with its own customization map.
func (i OrderItem) Clone() OrderItem {
	out := i
	if i.Customizations != nil {
		out.Customizations = make(map[string]string, len(i.Customizations))
		for k, v := range i.Customizations {
			out.Customizations[k] = v
		}
	}
	return out
}

// CloneOrderItems deep-copies a line item slice.
func CloneOrderItems(in []OrderItem) []OrderItem {
	if in == nil {
		return nil
	}
	out := make([]OrderItem, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// Order snapshots a checkout. Items and DeliveryAddress are captured copies,
// never live references into the cart or the address book.
type Order struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	VendorID        string              `json:"vendor_id"`
	Items           []OrderItem         `json:"items"`
	Status          enums.OrderStatus   `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	DeliveryAddress Address             `json:"delivery_address"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   enums.PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	out := o
	out.Items = CloneOrderItems(o.Items)
	out.DeliveryAddress = o.DeliveryAddress.Clone()
	return out
}

// CloneOrders deep-copies an order slice.
func CloneOrders(in []Order) []Order {
	if in == nil {
		return nil
	}
	out := make([]Order, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
