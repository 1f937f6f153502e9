package state

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/streetify/streetify-backend/internal/orders"
	"github.com/streetify/streetify-backend/internal/social"
	"github.com/streetify/streetify-backend/internal/users"
	"github.com/streetify/streetify-backend/internal/vendors"
	"github.com/streetify/streetify-backend/pkg/enums"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/metrics"
	"github.com/streetify/streetify-backend/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "state-test", Output: io.Discard})
	store, err := NewStore(metrics.NewActionMetrics(prometheus.NewRegistry()), logg)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func cartItem(id string, qty int, price string) types.OrderItem {
	return types.OrderItem{MenuItemID: id, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestDispatchRoutesToOwningSlice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Dispatch(ctx, orders.AddToCart{VendorID: "v1", Item: cartItem("taco", 1, "3.50")})
	store.Dispatch(ctx, vendors.SetVendors{Vendors: []types.Vendor{{ID: "v1", Name: "Taco Cart"}}})
	user := types.User{ID: "u1", Name: "Ana"}
	store.Dispatch(ctx, users.SetUser{User: &user})
	store.Dispatch(ctx, social.AddToFeed{Content: types.SocialContent{
		ID:    "p1",
		Type:  enums.ContentTypePost,
		Media: []types.Media{{Type: enums.MediaTypeImage, URL: "https://cdn/x"}},
	}})

	root := store.Snapshot()
	if len(root.Orders.Cart.Items) != 1 {
		t.Fatal("orders action not applied")
	}
	if len(root.Vendors.Vendors) != 1 {
		t.Fatal("vendors action not applied")
	}
	if !root.Users.IsAuthenticated {
		t.Fatal("users action not applied")
	}
	if len(root.Social.FeedIDs) != 1 {
		t.Fatal("social action not applied")
	}
}

func TestSerialDispatchUnderConcurrency(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const workers = 32
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				store.Dispatch(ctx, orders.AddToCart{VendorID: "v1", Item: cartItem("taco", 1, "3.50")})
			}
		}()
	}
	wg.Wait()

	state := store.Orders()
	if len(state.Cart.Items) != 1 {
		t.Fatalf("got %d lines, want 1 merged line", len(state.Cart.Items))
	}
	wantQty := workers * perWorker
	if state.Cart.Items[0].Quantity != wantQty {
		t.Fatalf("quantity = %d, want %d (lost updates)", state.Cart.Items[0].Quantity, wantQty)
	}
	wantTotal := decimal.RequireFromString("3.50").Mul(decimal.NewFromInt(int64(wantQty)))
	if !state.Cart.TotalAmount.Equal(wantTotal) {
		t.Fatalf("total = %s, want %s", state.Cart.TotalAmount, wantTotal)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	store.Dispatch(ctx, orders.AddToCart{VendorID: "v1", Item: cartItem("taco", 2, "3.50")})

	snap := store.Snapshot()
	snap.Orders.Cart.Items[0].Quantity = 99
	snap.Orders.Cart.VendorID = nil

	state := store.Orders()
	if state.Cart.Items[0].Quantity != 2 || state.Cart.VendorID == nil {
		t.Fatal("mutating a snapshot leaked into the store")
	}
}

func TestSubscribersSeeEachAppliedAction(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var seen []RootState
	cancel := store.Subscribe(func(root RootState) {
		seen = append(seen, root)
	})

	store.Dispatch(ctx, orders.AddToCart{VendorID: "v1", Item: cartItem("taco", 1, "3.50")})
	store.Dispatch(ctx, orders.ClearCart{})

	if len(seen) != 2 {
		t.Fatalf("subscriber saw %d notifications, want 2", len(seen))
	}
	if len(seen[0].Orders.Cart.Items) != 1 {
		t.Fatal("first notification missing the added item")
	}
	if len(seen[1].Orders.Cart.Items) != 0 {
		t.Fatal("second notification missing the clear")
	}

	cancel()
	store.Dispatch(ctx, orders.AddToCart{VendorID: "v1", Item: cartItem("taco", 1, "3.50")})
	if len(seen) != 2 {
		t.Fatal("cancelled subscriber still notified")
	}
}

type alienAction struct{}

func (alienAction) Name() string { return "alien/noop" }

func TestUnknownActionIsNoOp(t *testing.T) {
	store := newTestStore(t)
	before := store.Snapshot()

	store.Dispatch(context.Background(), alienAction{})

	after := store.Snapshot()
	if len(after.Orders.Cart.Items) != len(before.Orders.Cart.Items) {
		t.Fatal("unknown action changed state")
	}
}

func TestRestoreReplacesTree(t *testing.T) {
	store := newTestStore(t)

	root := NewRootState()
	root.Orders = orders.Reduce(root.Orders, orders.AddToCart{VendorID: "v1", Item: cartItem("taco", 3, "3.50")})
	store.Restore(root)

	state := store.Orders()
	if len(state.Cart.Items) != 1 || state.Cart.Items[0].Quantity != 3 {
		t.Fatalf("restored cart = %+v", state.Cart)
	}
}
