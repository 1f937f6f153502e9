package cron

import (
	"context"
	"fmt"

	"github.com/streetify/streetify-backend/internal/vendors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/types"
	"go.uber.org/multierr"
)

type vendorSource interface {
	Vendors() vendors.State
}

type vendorCacher interface {
	SaveVendors(ctx context.Context, vendors []types.Vendor) error
}

// CatalogCacheJobParams configure the mirror job.
type CatalogCacheJobParams struct {
	Logger *logger.Logger
	Store  vendorSource
	Cache  vendorCacher
}

// NewCatalogCacheJob builds the job that mirrors the in-memory vendor
// catalog and the nearby list into the local database.
func NewCatalogCacheJob(params CatalogCacheJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("state store required")
	}
	if params.Cache == nil {
		return nil, fmt.Errorf("archive service required")
	}
	return &catalogCacheJob{
		logg:  params.Logger,
		store: params.Store,
		cache: params.Cache,
	}, nil
}

type catalogCacheJob struct {
	logg  *logger.Logger
	store vendorSource
	cache vendorCacher
}

func (j *catalogCacheJob) Name() string { return "catalog-cache" }

func (j *catalogCacheJob) Run(ctx context.Context) error {
	state := j.store.Vendors()

	var errs error
	if len(state.Vendors) > 0 {
		errs = multierr.Append(errs, j.cache.SaveVendors(ctx, state.Vendors))
	}
	if len(state.NearbyVendors) > 0 {
		errs = multierr.Append(errs, j.cache.SaveVendors(ctx, state.NearbyVendors))
	}
	if errs != nil {
		return fmt.Errorf("catalog cache: %w", errs)
	}

	total := len(state.Vendors) + len(state.NearbyVendors)
	if total > 0 {
		j.logg.Info(j.logg.WithField(ctx, "vendors", total), "vendor catalog mirrored")
	}
	return nil
}
