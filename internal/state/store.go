package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/streetify/streetify-backend/internal/orders"
	"github.com/streetify/streetify-backend/internal/social"
	"github.com/streetify/streetify-backend/internal/users"
	"github.com/streetify/streetify-backend/internal/vendors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/metrics"
)

// Action is any slice action. Dispatch routes it to the owning reducer.
type Action interface {
	Name() string
}

// RootState composes the four slice states.
type RootState struct {
	Users   users.State   `json:"users"`
	Vendors vendors.State `json:"vendors"`
	Orders  orders.State  `json:"orders"`
	Social  social.State  `json:"social"`
}

// NewRootState returns the initial state of every slice.
func NewRootState() RootState {
	return RootState{
		Users:   users.NewState(),
		Vendors: vendors.NewState(),
		Orders:  orders.NewState(),
		Social:  social.NewState(),
	}
}

// Clone returns a deep copy of the whole tree.
func (r RootState) Clone() RootState {
	return RootState{
		Users:   r.Users.Clone(),
		Vendors: r.Vendors.Clone(),
		Orders:  r.Orders.Clone(),
		Social:  r.Social.Clone(),
	}
}

// Subscriber receives a state snapshot after each applied action.
type Subscriber func(RootState)

// Store holds the application state and applies actions serially. All writes
// go through Dispatch under one mutex, so every action observes the state
// left by the previous one. Reads hand out deep copies.
type Store struct {
	mu   sync.RWMutex
	root RootState

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int

	metrics *metrics.ActionMetrics
	logg    *logger.Logger
}

// NewStore builds a store with every slice at its initial state. Metrics are
// optional.
func NewStore(actionMetrics *metrics.ActionMetrics, logg *logger.Logger) (*Store, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Store{
		root:    NewRootState(),
		subs:    map[int]Subscriber{},
		metrics: actionMetrics,
		logg:    logg,
	}, nil
}

// Dispatch routes the action to its slice reducer and notifies subscribers.
// Actions no slice owns are counted as no-ops and otherwise ignored.
func (s *Store) Dispatch(ctx context.Context, action Action) {
	if action == nil {
		return
	}

	s.mu.Lock()
	applied := true
	switch a := action.(type) {
	case users.Action:
		s.root.Users = users.Reduce(s.root.Users, a)
	case vendors.Action:
		s.root.Vendors = vendors.Reduce(s.root.Vendors, a)
	case orders.Action:
		s.root.Orders = orders.Reduce(s.root.Orders, a)
	case social.Action:
		s.root.Social = social.Reduce(s.root.Social, a)
	default:
		applied = false
	}
	var snapshot RootState
	if applied {
		snapshot = s.root.Clone()
	}
	s.mu.Unlock()

	if !applied {
		s.metrics.IncNoop(action.Name())
		s.logg.Warn(s.logg.WithAction(ctx, action.Name()), "action matched no slice")
		return
	}

	s.metrics.IncDispatched(action.Name())
	s.notify(snapshot)
}

// Snapshot returns a deep copy of the current tree.
func (s *Store) Snapshot() RootState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.Clone()
}

// Restore replaces the whole tree, used when rehydrating a persisted
// snapshot at boot.
func (s *Store) Restore(root RootState) {
	s.mu.Lock()
	s.root = root.Clone()
	snapshot := s.root.Clone()
	s.mu.Unlock()
	s.notify(snapshot)
}

// Subscribe registers a subscriber and returns its cancel func. Subscribers
// run synchronously after each applied action, in no particular order.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(snapshot RootState) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Users returns a deep copy of the users slice.
func (s *Store) Users() users.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.Users.Clone()
}

// Vendors returns a deep copy of the vendors slice.
func (s *Store) Vendors() vendors.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.Vendors.Clone()
}

// Orders returns a deep copy of the orders slice.
func (s *Store) Orders() orders.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.Orders.Clone()
}

// Social returns a deep copy of the social slice.
func (s *Store) Social() social.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.Social.Clone()
}

// DispatchUsers adapts Dispatch to the users service interface.
func (s *Store) DispatchUsers(ctx context.Context, action users.Action) { s.Dispatch(ctx, action) }

// DispatchVendors adapts Dispatch to the vendors service interface.
func (s *Store) DispatchVendors(ctx context.Context, action vendors.Action) { s.Dispatch(ctx, action) }

// DispatchOrders adapts Dispatch to the orders service interface.
func (s *Store) DispatchOrders(ctx context.Context, action orders.Action) { s.Dispatch(ctx, action) }

// DispatchSocial adapts Dispatch to the social service interface.
func (s *Store) DispatchSocial(ctx context.Context, action social.Action) { s.Dispatch(ctx, action) }
