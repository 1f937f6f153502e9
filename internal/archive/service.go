package archive

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/streetify/streetify-backend/pkg/db"
	"github.com/streetify/streetify-backend/pkg/db/models"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/types"
	"gorm.io/gorm/clause"
)

// Service mirrors terminal orders and the vendor catalog into the local
// database so both survive restarts. It is write-through storage, never the
// source of truth; the state store is.
type Service interface {
	SaveOrder(ctx context.Context, order types.Order) error
	RecentOrders(ctx context.Context, userID string, limit int) ([]types.Order, error)
	SaveVendors(ctx context.Context, vendors []types.Vendor) error
	CachedVendors(ctx context.Context) ([]types.Vendor, error)
}

type service struct {
	client *db.Client
	logg   *logger.Logger
}

// NewService builds the archive over the shared database client.
func NewService(client *db.Client, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{client: client, logg: logg}, nil
}

// SaveOrder upserts one order snapshot.
func (s *service) SaveOrder(ctx context.Context, order types.Order) error {
	if order.ID == "" {
		return fmt.Errorf("order id required")
	}

	record := models.ArchivedOrder{
		ID:              order.ID,
		UserID:          order.UserID,
		VendorID:        order.VendorID,
		Status:          order.Status,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus,
		TotalAmount:     order.TotalAmount.String(),
		Items:           order.Items,
		DeliveryAddress: order.DeliveryAddress,
		PlacedAt:        order.CreatedAt,
	}

	if err := s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&record).Error; err != nil {
		return fmt.Errorf("archiving order: %w", err)
	}
	return nil
}

// RecentOrders returns a user's archived orders, newest first.
func (s *service) RecentOrders(ctx context.Context, userID string, limit int) ([]types.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id required")
	}
	if limit <= 0 {
		limit = 50
	}

	var records []models.ArchivedOrder
	if err := s.client.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("placed_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("loading archived orders: %w", err)
	}

	out := make([]types.Order, 0, len(records))
	for _, record := range records {
		order, err := recordToOrder(record)
		if err != nil {
			s.logg.Error(s.logg.WithField(ctx, "order_id", record.ID), "decode archived order", err)
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

// SaveVendors upserts the catalog mirror.
func (s *service) SaveVendors(ctx context.Context, vendors []types.Vendor) error {
	if len(vendors) == 0 {
		return nil
	}

	records := make([]models.CachedVendor, 0, len(vendors))
	for _, vendor := range vendors {
		if vendor.ID == "" {
			continue
		}
		records = append(records, vendorToRecord(vendor))
	}
	if len(records) == 0 {
		return nil
	}

	if err := s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&records).Error; err != nil {
		return fmt.Errorf("caching vendors: %w", err)
	}
	return nil
}

// CachedVendors returns the last mirrored catalog.
func (s *service) CachedVendors(ctx context.Context) ([]types.Vendor, error) {
	var records []models.CachedVendor
	if err := s.client.DB().WithContext(ctx).
		Order("name ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("loading cached vendors: %w", err)
	}

	out := make([]types.Vendor, 0, len(records))
	for _, record := range records {
		out = append(out, recordToVendor(record))
	}
	return out, nil
}

func recordToOrder(record models.ArchivedOrder) (types.Order, error) {
	total, err := decimal.NewFromString(record.TotalAmount)
	if err != nil {
		return types.Order{}, fmt.Errorf("parsing total %q: %w", record.TotalAmount, err)
	}
	return types.Order{
		ID:              record.ID,
		UserID:          record.UserID,
		VendorID:        record.VendorID,
		Items:           types.CloneOrderItems(record.Items),
		Status:          record.Status,
		TotalAmount:     total,
		DeliveryAddress: record.DeliveryAddress.Clone(),
		PaymentMethod:   record.PaymentMethod,
		PaymentStatus:   record.PaymentStatus,
		CreatedAt:       record.PlacedAt,
		UpdatedAt:       record.ArchivedAt,
	}, nil
}

func vendorToRecord(vendor types.Vendor) models.CachedVendor {
	return models.CachedVendor{
		ID:             vendor.ID,
		Name:           vendor.Name,
		Description:    vendor.Description,
		Latitude:       vendor.Location.Latitude,
		Longitude:      vendor.Location.Longitude,
		Address:        vendor.Location.Address,
		Cuisine:        vendor.Cuisine,
		Rating:         vendor.Rating,
		TotalRatings:   vendor.TotalRatings,
		Photos:         vendor.Photos,
		Menu:           vendor.Menu,
		OperatingHours: vendor.OperatingHours,
		IsOpen:         vendor.IsOpen,
	}
}

func recordToVendor(record models.CachedVendor) types.Vendor {
	return types.Vendor{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Location: types.VendorLocation{
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
			Address:   record.Address,
		},
		Cuisine:        record.Cuisine,
		Rating:         record.Rating,
		TotalRatings:   record.TotalRatings,
		Photos:         record.Photos,
		Menu:           types.CloneMenu(record.Menu),
		OperatingHours: record.OperatingHours,
		IsOpen:         record.IsOpen,
	}
}
