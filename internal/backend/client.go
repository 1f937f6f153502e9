package backend

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streetify/streetify-backend/pkg/config"
	"github.com/streetify/streetify-backend/pkg/enums"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/types"
)

// Client is the mocked remote backend. Every call sleeps for the configured
// delay, optionally fails at the configured rate, and returns canned sample
// data. Nothing here talks to a network.
type Client struct {
	cfg  config.BackendConfig
	logg *logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

const mockOTPCode = "123456"

// New builds the stub client.
func New(cfg config.BackendConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.FailureRate < 0 || cfg.FailureRate > 1 {
		return nil, fmt.Errorf("failure rate must be within [0,1]")
	}
	return &Client{
		cfg:  cfg,
		logg: logg,
		rng:  rand.New(rand.NewSource(cfg.SampleSeed)),
	}, nil
}

// CreateOrderInput captures the cart snapshot being placed.
type CreateOrderInput struct {
	UserID          string
	VendorID        string
	Items           []types.OrderItem
	TotalAmount     decimal.Decimal
	DeliveryAddress types.Address
	PaymentMethod   string
}

// RegisterInput captures a new account payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

// UpdateProfileInput patches the remote profile; nil fields stay untouched.
type UpdateProfileInput struct {
	UserID     string
	Name       *string
	Phone      *string
	Bio        *string
	ProfilePic *string
}

// GetFeedPosts returns the sample feed.
func (c *Client) GetFeedPosts(ctx context.Context) ([]types.SocialContent, error) {
	if err := c.simulate(ctx, "getFeedPosts"); err != nil {
		return nil, err
	}
	return types.CloneContents(sampleFeed()), nil
}

// GetNearbyVendors returns the sample vendors regardless of the point; a real
// backend would run a geo query here.
func (c *Client) GetNearbyVendors(ctx context.Context, point types.GeoPoint) ([]types.Vendor, error) {
	if err := c.simulate(ctx, "getNearbyVendors"); err != nil {
		return nil, err
	}
	return types.CloneVendors(sampleVendors()), nil
}

// GetVendorsWithFilters applies the filter to the sample catalog.
func (c *Client) GetVendorsWithFilters(ctx context.Context, filter types.VendorFilter) ([]types.Vendor, error) {
	if err := c.simulate(ctx, "getVendorsWithFilters"); err != nil {
		return nil, err
	}

	matched := make([]types.Vendor, 0)
	for _, vendor := range sampleVendors() {
		if matchesFilter(vendor, filter) {
			matched = append(matched, vendor.Clone())
		}
	}
	return matched, nil
}

// CreateOrder accepts the snapshot and returns it as a pending order.
func (c *Client) CreateOrder(ctx context.Context, input CreateOrderInput) (types.Order, error) {
	if err := c.simulate(ctx, "createOrder"); err != nil {
		return types.Order{}, err
	}
	if input.UserID == "" || input.VendorID == "" || len(input.Items) == 0 {
		return types.Order{}, fmt.Errorf("incomplete order payload")
	}

	now := time.Now().UTC()
	return types.Order{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		VendorID:        input.VendorID,
		Items:           types.CloneOrderItems(input.Items),
		Status:          enums.OrderStatusPending,
		TotalAmount:     input.TotalAmount,
		DeliveryAddress: input.DeliveryAddress.Clone(),
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   enums.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// SignInWithEmailAndPassword returns the sample profile for any non-empty
// credentials.
func (c *Client) SignInWithEmailAndPassword(ctx context.Context, email, password string) (types.User, error) {
	if err := c.simulate(ctx, "signIn"); err != nil {
		return types.User{}, err
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return types.User{}, fmt.Errorf("invalid credentials")
	}
	user := sampleUser()
	user.Email = strings.ToLower(strings.TrimSpace(email))
	return user, nil
}

// CreateUserWithEmailAndPassword returns a fresh profile echoing the payload.
func (c *Client) CreateUserWithEmailAndPassword(ctx context.Context, input RegisterInput) (types.User, error) {
	if err := c.simulate(ctx, "createUser"); err != nil {
		return types.User{}, err
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return types.User{}, fmt.Errorf("email and password required")
	}
	return types.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     input.Phone,
		Following: []string{},
		Followers: []string{},
	}, nil
}

// UpdateUserProfile echoes the patch back as the updated profile.
func (c *Client) UpdateUserProfile(ctx context.Context, input UpdateProfileInput) (types.User, error) {
	if err := c.simulate(ctx, "updateUserProfile"); err != nil {
		return types.User{}, err
	}
	if input.UserID == "" {
		return types.User{}, fmt.Errorf("user id required")
	}

	user := sampleUser()
	user.ID = input.UserID
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.ProfilePic != nil {
		user.ProfilePic = input.ProfilePic
	}
	return user, nil
}

// SendPasswordResetEmail pretends to send the reset email.
func (c *Client) SendPasswordResetEmail(ctx context.Context, email string) error {
	if err := c.simulate(ctx, "sendPasswordReset"); err != nil {
		return err
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email required")
	}
	return nil
}

// SendOTP pretends to deliver a one-time code.
func (c *Client) SendOTP(ctx context.Context, phone string) error {
	if err := c.simulate(ctx, "sendOTP"); err != nil {
		return err
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("phone required")
	}
	return nil
}

// VerifyOTP accepts only the fixed mock code.
func (c *Client) VerifyOTP(ctx context.Context, phone, code string) (bool, error) {
	if err := c.simulate(ctx, "verifyOTP"); err != nil {
		return false, err
	}
	return code == mockOTPCode, nil
}

// simulate waits out the mock delay, honoring cancellation, and injects the
// configured failure rate.
func (c *Client) simulate(ctx context.Context, op string) error {
	if c.cfg.MockDelay > 0 {
		timer := time.NewTimer(c.cfg.MockDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if c.cfg.FailureRate > 0 {
		c.mu.Lock()
		roll := c.rng.Float64()
		c.mu.Unlock()
		if roll < c.cfg.FailureRate {
			c.logg.Warn(c.logg.WithField(ctx, "op", op), "injected backend failure")
			return fmt.Errorf("simulated backend failure on %s", op)
		}
	}
	return nil
}

func matchesFilter(vendor types.Vendor, filter types.VendorFilter) bool {
	if filter.IsOpen && !vendor.IsOpen {
		return false
	}
	if vendor.Rating < filter.Rating {
		return false
	}
	if len(filter.Cuisine) > 0 && !hasAnyCuisine(vendor.Cuisine, filter.Cuisine) {
		return false
	}
	return hasItemInRange(vendor.Menu, filter.PriceRange)
}

func hasAnyCuisine(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func hasItemInRange(menu []types.MenuItem, bounds types.PriceRange) bool {
	if len(menu) == 0 {
		return false
	}
	for _, item := range menu {
		if item.Price.GreaterThanOrEqual(bounds.Min) && item.Price.LessThanOrEqual(bounds.Max) {
			return true
		}
	}
	return false
}
