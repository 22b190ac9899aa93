// Package app assembles the auction engine with fx. Callers provide a
// config.Config and a clock.Clock; everything else is built here.
package app

import (
	"context"
	"fmt"
	"time"

	"auction-engine/internal/archive"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/config"
	"auction-engine/internal/leaderboard"
	"auction-engine/internal/mirror"
	"auction-engine/internal/notification"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"
	"auction-engine/utils"

	"code.cloudfoundry.org/clock"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const startupTimeout = 30 * time.Second

var Module = fx.Options(
	StorageModule,
	EngineModule,
	HTTPModule,
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStore,
		NewArchiveStore,
	),
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		leaderboard.NewHub,
		NewArchiver,
		NewScheduler,
		NewReplicator,
		NewDispatcher,
		NewService,
	),
)

var HTTPModule = fx.Module("http",
	fx.Provide(NewRouter),
)

// NewStore opens the configured ledger backend
func NewStore(lc fx.Lifecycle, cfg config.Config) (repository.Store, error) {
	if cfg.Store.Backend != config.BackendPostgres {
		utils.Info("Using in-memory store", nil)
		return repository.NewMemoryRepo(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	repo, err := repository.NewPostgresRepo(ctx, cfg.Store.DatabaseURL, cfg.Store.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("app: failed to open postgres store: %w", err)
	}
	if err := repo.RunMigrations(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("app: failed to migrate postgres store: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			repo.Close()
			return nil
		},
	})
	utils.Info("Using postgres store", map[string]any{"max_conns": cfg.Store.MaxConns})
	return repo, nil
}

// NewArchiveStore opens the configured archive backend
func NewArchiveStore(cfg config.Config) (archive.Store, error) {
	if cfg.Archive.Backend != config.BackendS3 {
		utils.Info("Using in-memory archive", nil)
		return archive.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	client, err := archive.NewS3Client(ctx, cfg.Archive)
	if err != nil {
		return nil, fmt.Errorf("app: failed to create s3 client: %w", err)
	}
	store, err := archive.NewS3Store(client, cfg.Archive.Bucket)
	if err != nil {
		return nil, fmt.Errorf("app: failed to create s3 archive: %w", err)
	}
	utils.Info("Using s3 archive", map[string]any{"bucket": cfg.Archive.Bucket})
	return store, nil
}

func NewArchiver(store repository.Store, arch archive.Store, hub *leaderboard.Hub, clk clock.Clock, cfg config.Config) *scheduler.Archiver {
	return scheduler.NewArchiver(store, arch, hub, clk, cfg.Archive)
}

// NewScheduler arms timers for every open auction on start and closes the
// ones whose deadline passed while the process was down.
func NewScheduler(lc fx.Lifecycle, store repository.Store, archiver *scheduler.Archiver, clk clock.Clock, cfg config.Config) *scheduler.Scheduler {
	s := scheduler.NewScheduler(clk, archiver, cfg.Archive.RetryEvery)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Recover(ctx, store)
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
	return s
}

func NewReplicator(lc fx.Lifecycle, store repository.Store, clk clock.Clock, cfg config.Config) (*mirror.Replicator, error) {
	r, err := mirror.NewReplicator(store, clk, cfg.Mirror)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return r.Shutdown(ctx)
		},
	})
	return r, nil
}

func NewDispatcher(store repository.Store, clk clock.Clock, cfg config.Config) *notification.Dispatcher {
	return notification.NewDispatcher(store, store, notification.LogOrderCreator{}, notification.LogPublisher{}, clk, cfg.Handoff)
}

type serviceParams struct {
	fx.In

	Store      repository.Store
	Archive    archive.Store
	Hub        *leaderboard.Hub
	Archiver   *scheduler.Archiver
	Scheduler  *scheduler.Scheduler
	Dispatcher *notification.Dispatcher
	Mirror     *mirror.Replicator
	Clock      clock.Clock
}

func NewService(p serviceParams) *bidding.BiddingService {
	return bidding.NewBiddingService(bidding.Components{
		Store:      p.Store,
		Archive:    p.Archive,
		Hub:        p.Hub,
		Archiver:   p.Archiver,
		Scheduler:  p.Scheduler,
		Dispatcher: p.Dispatcher,
		Mirror:     p.Mirror,
		Clock:      p.Clock,
	})
}

func NewRouter(svc *bidding.BiddingService, cfg config.Config) *gin.Engine {
	return server.SetupRouter(svc, cfg.CORS)
}
