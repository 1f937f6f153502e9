package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/streetify/streetify-backend/internal/backend"
	"github.com/streetify/streetify-backend/pkg/enums"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/pagination"
	"github.com/streetify/streetify-backend/pkg/types"
)

// Store is the slice of the state container this service needs.
type Store interface {
	Orders() State
	DispatchOrders(ctx context.Context, action Action)
}

type orderPlacer interface {
	CreateOrder(ctx context.Context, input backend.CreateOrderInput) (types.Order, error)
}

type orderArchiver interface {
	SaveOrder(ctx context.Context, order types.Order) error
}

// Service exposes cart and order operations on top of the state store.
type Service interface {
	Cart(ctx context.Context) Cart
	AddItem(ctx context.Context, input AddItemInput) (Cart, error)
	RemoveItem(ctx context.Context, menuItemID string) (Cart, error)
	UpdateQuantity(ctx context.Context, menuItemID string, quantity int) (Cart, error)
	ClearCart(ctx context.Context) Cart
	Checkout(ctx context.Context, input CheckoutInput) (types.Order, error)
	CurrentOrder(ctx context.Context) *types.Order
	History(ctx context.Context, params pagination.Params) []types.Order
	AdvanceStatus(ctx context.Context, orderID string, status enums.OrderStatus) (types.Order, error)
}

type service struct {
	store   Store
	backend orderPlacer
	archive orderArchiver
	logg    *logger.Logger
}

// NewService builds an orders service backed by the provided stack. The
// archiver is optional; everything else is required.
func NewService(store Store, placer orderPlacer, archive orderArchiver, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("state store required")
	}
	if placer == nil {
		return nil, fmt.Errorf("backend client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		store:   store,
		backend: placer,
		archive: archive,
		logg:    logg,
	}, nil
}

// AddItemInput captures one line added to the cart.
type AddItemInput struct {
	VendorID string
	Item     types.OrderItem
}

// CheckoutInput captures the payload required to place the cart as an order.
type CheckoutInput struct {
	UserID          string
	DeliveryAddress types.Address
	PaymentMethod   string
}

func (s *service) Cart(ctx context.Context) Cart {
	return s.store.Orders().Cart
}

// AddItem dispatches an add. The reducer treats a cross-vendor add as a
// silent no-op; the service surfaces it as a conflict so callers can prompt
// the user to clear the cart first.
func (s *service) AddItem(ctx context.Context, input AddItemInput) (Cart, error) {
	if input.VendorID == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	if input.Item.MenuItemID == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	if input.Item.Quantity < 1 {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if input.Item.Price.IsNegative() {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	cart := s.store.Orders().Cart
	if !cart.IsEmpty() && cart.VendorID != nil && *cart.VendorID != input.VendorID {
		return Cart{}, pkgerrors.New(pkgerrors.CodeConflict, "cart holds items from another vendor")
	}

	s.store.DispatchOrders(ctx, AddToCart{VendorID: input.VendorID, Item: input.Item})
	return s.store.Orders().Cart, nil
}

func (s *service) RemoveItem(ctx context.Context, menuItemID string) (Cart, error) {
	if menuItemID == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	s.store.DispatchOrders(ctx, RemoveFromCart{MenuItemID: menuItemID})
	return s.store.Orders().Cart, nil
}

func (s *service) UpdateQuantity(ctx context.Context, menuItemID string, quantity int) (Cart, error) {
	if menuItemID == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	s.store.DispatchOrders(ctx, UpdateItemQuantity{MenuItemID: menuItemID, Quantity: quantity})
	return s.store.Orders().Cart, nil
}

func (s *service) ClearCart(ctx context.Context) Cart {
	s.store.DispatchOrders(ctx, ClearCart{})
	return s.store.Orders().Cart
}

// Checkout places the cart with the backend, then records the order and
// clears the cart as two sequential dispatches. A crash between the two can
// leave both the order and the cart populated; there is no cross-slice
// transaction.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (types.Order, error) {
	if input.UserID == "" {
		return types.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.PaymentMethod == "" {
		return types.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "payment method is required")
	}

	state := s.store.Orders()
	if state.Cart.IsEmpty() || state.Cart.VendorID == nil {
		return types.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order, err := s.backend.CreateOrder(ctx, backend.CreateOrderInput{
		UserID:          input.UserID,
		VendorID:        *state.Cart.VendorID,
		Items:           state.Cart.Items,
		TotalAmount:     state.Cart.TotalAmount,
		DeliveryAddress: input.DeliveryAddress,
		PaymentMethod:   input.PaymentMethod,
	})
	if err != nil {
		return types.Order{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "place order")
	}

	s.store.DispatchOrders(ctx, SetCurrentOrder{Order: &order})
	s.store.DispatchOrders(ctx, ClearCart{})

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"order_id":  order.ID,
		"vendor_id": order.VendorID,
	}), "order placed")

	return order, nil
}

func (s *service) CurrentOrder(ctx context.Context) *types.Order {
	return s.store.Orders().CurrentOrder
}

func (s *service) History(ctx context.Context, params pagination.Params) []types.Order {
	return pagination.Page(s.store.Orders().History, params.Normalize())
}

// AdvanceStatus moves an order to the given status. A terminal status on the
// current order also moves it into history and mirrors it to the archive.
func (s *service) AdvanceStatus(ctx context.Context, orderID string, status enums.OrderStatus) (types.Order, error) {
	if orderID == "" {
		return types.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !status.IsValid() {
		return types.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	state := s.store.Orders()
	target := findOrder(state, orderID)
	if target == nil {
		return types.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if target.Status.IsTerminal() {
		return types.Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order already in a terminal status")
	}

	now := time.Now().UTC()
	s.store.DispatchOrders(ctx, UpdateOrderStatus{OrderID: orderID, Status: status, At: now})

	state = s.store.Orders()
	if status.IsTerminal() && state.CurrentOrder != nil && state.CurrentOrder.ID == orderID {
		completed := *state.CurrentOrder
		s.store.DispatchOrders(ctx, AddToOrderHistory{Order: completed})
		s.store.DispatchOrders(ctx, SetCurrentOrder{Order: nil})
		s.archiveOrder(ctx, completed)
		return completed, nil
	}

	updated := findOrder(state, orderID)
	if updated == nil {
		return types.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if status.IsTerminal() {
		s.archiveOrder(ctx, *updated)
	}
	return *updated, nil
}

func (s *service) archiveOrder(ctx context.Context, order types.Order) {
	if s.archive == nil {
		return
	}
	if err := s.archive.SaveOrder(ctx, order); err != nil {
		s.logg.Error(s.logg.WithField(ctx, "order_id", order.ID), "archive order", err)
	}
}

func findOrder(state State, orderID string) *types.Order {
	if state.CurrentOrder != nil && state.CurrentOrder.ID == orderID {
		order := state.CurrentOrder.Clone()
		return &order
	}
	for _, order := range state.History {
		if order.ID == orderID {
			cloned := order.Clone()
			return &cloned
		}
	}
	return nil
}
