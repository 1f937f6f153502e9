package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/streetify/streetify-backend/api/routes"
	"github.com/streetify/streetify-backend/internal/archive"
	"github.com/streetify/streetify-backend/internal/backend"
	"github.com/streetify/streetify-backend/internal/cron"
	"github.com/streetify/streetify-backend/internal/orders"
	"github.com/streetify/streetify-backend/internal/social"
	"github.com/streetify/streetify-backend/internal/state"
	"github.com/streetify/streetify-backend/internal/users"
	"github.com/streetify/streetify-backend/internal/vendors"
	"github.com/streetify/streetify-backend/pkg/auth/session"
	"github.com/streetify/streetify-backend/pkg/config"
	"github.com/streetify/streetify-backend/pkg/db"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/metrics"
	"github.com/streetify/streetify-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := db.MaybeAutoMigrate(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to migrate archive schema", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessions, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	actionMetrics := metrics.NewActionMetrics(promRegistry)

	store, err := state.NewStore(actionMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create state store", err)
		os.Exit(1)
	}

	backendClient, err := backend.New(cfg.Backend, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create backend client", err)
		os.Exit(1)
	}

	archiveSvc, err := archive.NewService(dbClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create archive service", err)
		os.Exit(1)
	}

	usersSvc, err := users.NewService(store, backendClient, sessions, cfg.JWT, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	vendorsSvc, err := vendors.NewService(store, backendClient, archiveSvc, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create vendors service", err)
		os.Exit(1)
	}

	ordersSvc, err := orders.NewService(store, backendClient, archiveSvc, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	socialSvc, err := social.NewService(store, backendClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create social service", err)
		os.Exit(1)
	}

	var persister *state.Persister
	if cfg.Snapshot.Enabled {
		persister, err = state.NewPersister(redisClient, cfg.Snapshot)
		if err != nil {
			logg.Error(context.Background(), "failed to create snapshot persister", err)
			os.Exit(1)
		}
		wireRehydration(store, persister, logg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The scheduled jobs read and mutate the same in-memory tree the
	// handlers do, so the runner lives in this process.
	cronSvc, err := buildCronService(cfg, logg, promRegistry, redisClient, store, socialSvc, archiveSvc, persister)
	if err != nil {
		logg.Error(ctx, "failed to create cron runner", err)
		os.Exit(1)
	}
	go func() {
		if err := cronSvc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logg.Error(ctx, "cron runner stopped unexpectedly", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg,
			dbClient, redisClient,
			sessions,
			usersSvc, vendorsSvc, ordersSvc, socialSvc,
			archiveSvc,
			promRegistry,
		),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(shutdownCtx, "error shutting down server", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "api server shutting down gracefully")
}

// buildCronService wires the scheduled jobs against the live store. The
// snapshot job joins only when snapshots are enabled.
func buildCronService(
	cfg *config.Config,
	logg *logger.Logger,
	promRegistry *prometheus.Registry,
	redisClient *redis.Client,
	store *state.Store,
	socialSvc social.Service,
	archiveSvc archive.Service,
	persister *state.Persister,
) (*cron.Service, error) {
	storyJob, err := cron.NewStoryExpiryJob(cron.StoryExpiryJobParams{
		Logger: logg,
		Social: socialSvc,
	})
	if err != nil {
		return nil, err
	}

	catalogJob, err := cron.NewCatalogCacheJob(cron.CatalogCacheJobParams{
		Logger: logg,
		Store:  store,
		Cache:  archiveSvc,
	})
	if err != nil {
		return nil, err
	}

	registry := cron.NewRegistry(storyJob, catalogJob)

	if persister != nil {
		snapshotJob, err := cron.NewSnapshotJob(cron.SnapshotJobParams{
			Logger:    logg,
			Store:     store,
			Persister: persister,
		})
		if err != nil {
			return nil, err
		}
		registry.Register(snapshotJob)
	}

	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey("scheduler"), cfg.Cron.LockTTL)
	if err != nil {
		return nil, err
	}

	return cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: registry,
		Lock:     lock,
		Metrics:  metrics.NewCronJobMetrics(promRegistry),
		Interval: cfg.Cron.Interval,
	})
}

// wireRehydration restores the persisted tree the moment a sign-in lands, so
// a restarted instance picks up the cart, filters, and feed it had before.
func wireRehydration(store *state.Store, persister *state.Persister, logg *logger.Logger) {
	var mu sync.Mutex
	var lastUserID string
	store.Subscribe(func(root state.RootState) {
		user := root.Users.CurrentUser
		mu.Lock()
		if user == nil {
			lastUserID = ""
			mu.Unlock()
			return
		}
		if user.ID == lastUserID {
			mu.Unlock()
			return
		}
		lastUserID = user.ID
		mu.Unlock()

		ctx := logg.WithUserID(context.Background(), user.ID)
		restored, ok, err := persister.Load(ctx, user.ID)
		if err != nil {
			logg.Error(ctx, "loading state snapshot", err)
			return
		}
		if !ok {
			return
		}

		// Keep the fresh credentials; the snapshot only contributes the
		// domain slices.
		restored.Users = root.Users
		store.Restore(restored)
		logg.Info(ctx, "state rehydrated from snapshot")
	})
}
