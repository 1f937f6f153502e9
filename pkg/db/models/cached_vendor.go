package models

import (
	"time"

	"github.com/streetify/streetify-backend/pkg/types"
)

// CachedVendor is a catalog mirror refreshed from the backend so the last
// known vendor list is available offline.
type CachedVendor struct {
	ID             string               `gorm:"column:id;primaryKey"`
	Name           string               `gorm:"column:name;not null"`
	Description    string               `gorm:"column:description"`
	Latitude       float64              `gorm:"column:latitude"`
	Longitude      float64              `gorm:"column:longitude"`
	Address        string               `gorm:"column:address"`
	Cuisine        []string             `gorm:"column:cuisine;serializer:json"`
	Rating         float64              `gorm:"column:rating"`
	TotalRatings   int                  `gorm:"column:total_ratings"`
	Photos         []string             `gorm:"column:photos;serializer:json"`
	Menu           []types.MenuItem     `gorm:"column:menu;serializer:json"`
	OperatingHours types.OperatingHours `gorm:"column:operating_hours;serializer:json"`
	IsOpen         bool                 `gorm:"column:is_open"`
	RefreshedAt    time.Time            `gorm:"column:refreshed_at;autoUpdateTime"`
}
