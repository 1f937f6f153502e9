package db

import (
	"context"
	"fmt"

	"github.com/streetify/streetify-backend/pkg/config"
	"github.com/streetify/streetify-backend/pkg/db/models"
	"github.com/streetify/streetify-backend/pkg/logger"
)

// MaybeAutoMigrate creates the archive tables when the flag is enabled.
func MaybeAutoMigrate(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *Client) error {
	if !cfg.DB.AutoMigrate {
		return nil
	}

	if logg != nil {
		logg.Info(ctx, "running archive auto-migration")
	}

	if err := client.DB().WithContext(ctx).AutoMigrate(
		&models.ArchivedOrder{},
		&models.CachedVendor{},
	); err != nil {
		return fmt.Errorf("auto-migrating archive schema: %w", err)
	}

	return nil
}
