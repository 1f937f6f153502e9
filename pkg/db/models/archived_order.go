package models

import (
	"time"

	"github.com/streetify/streetify-backend/pkg/enums"
	"github.com/streetify/streetify-backend/pkg/types"
)

// ArchivedOrder mirrors a terminal order into the local archive so history
// survives process restarts. Items are a serialized snapshot, never a live
// reference.
type ArchivedOrder struct {
	ID              string              `gorm:"column:id;primaryKey"`
	UserID          string              `gorm:"column:user_id;index;not null"`
	VendorID        string              `gorm:"column:vendor_id;index;not null"`
	Status          enums.OrderStatus   `gorm:"column:status;not null"`
	PaymentMethod   string              `gorm:"column:payment_method"`
	PaymentStatus   enums.PaymentStatus `gorm:"column:payment_status"`
	TotalAmount     string              `gorm:"column:total_amount;not null"`
	Items           []types.OrderItem   `gorm:"column:items;serializer:json"`
	DeliveryAddress types.Address       `gorm:"column:delivery_address;serializer:json"`
	PlacedAt        time.Time           `gorm:"column:placed_at;not null"`
	ArchivedAt      time.Time           `gorm:"column:archived_at;autoCreateTime"`
}
