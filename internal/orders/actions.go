package orders

import (
	"time"

	"github.com/streetify/streetify-backend/pkg/enums"
	"github.com/streetify/streetify-backend/pkg/types"
)

// Action is a serializable orders-slice event consumed by Reduce.
type Action interface {
	Name() string
	isOrdersAction()
}

// AddToCart merges one line into the cart. Adding from a different vendor
// while the cart holds items leaves the state untouched.
type AddToCart struct {
	VendorID string          `json:"vendor_id"`
	Item     types.OrderItem `json:"item"`
}

// RemoveFromCart deletes the line with the given menu item id.
type RemoveFromCart struct {
	MenuItemID string `json:"menu_item_id"`
}

// UpdateItemQuantity sets a line's quantity. Zero or negative removes it.
type UpdateItemQuantity struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// ClearCart empties the cart and releases the vendor binding.
type ClearCart struct{}

// SetCurrentOrder replaces the in-flight order; nil clears it.
type SetCurrentOrder struct {
	Order *types.Order `json:"order"`
}

// AddToOrderHistory prepends an order to history.
type AddToOrderHistory struct {
	Order types.Order `json:"order"`
}

// UpdateOrderStatus updates the status wherever the order id appears, in the
// current order and in history independently.
type UpdateOrderStatus struct {
	OrderID string            `json:"order_id"`
	Status  enums.OrderStatus `json:"status"`
	At      time.Time         `json:"at"`
}

// SetLoading flips the slice-local loading flag.
type SetLoading struct {
	Loading bool `json:"loading"`
}

// SetError records a slice-local error message; nil clears it.
type SetError struct {
	Err *string `json:"error"`
}

func (AddToCart) Name() string          { return "orders/addToCart" }
func (RemoveFromCart) Name() string     { return "orders/removeFromCart" }
func (UpdateItemQuantity) Name() string { return "orders/updateItemQuantity" }
func (ClearCart) Name() string          { return "orders/clearCart" }
func (SetCurrentOrder) Name() string    { return "orders/setCurrentOrder" }
func (AddToOrderHistory) Name() string  { return "orders/addToOrderHistory" }
func (UpdateOrderStatus) Name() string  { return "orders/updateOrderStatus" }
func (SetLoading) Name() string         { return "orders/setLoading" }
func (SetError) Name() string           { return "orders/setError" }

func (AddToCart) isOrdersAction()          {}
func (RemoveFromCart) isOrdersAction()     {}
func (UpdateItemQuantity) isOrdersAction() {}
func (ClearCart) isOrdersAction()          {}
func (SetCurrentOrder) isOrdersAction()    {}
func (AddToOrderHistory) isOrdersAction()  {}
func (UpdateOrderStatus) isOrdersAction()  {}
func (SetLoading) isOrdersAction()         {}
func (SetError) isOrdersAction()           {}
