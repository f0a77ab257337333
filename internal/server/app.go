// Package server wires the sync server together: database and migrations,
// object store, commit notifications, the sync service and its gRPC
// transport. It also handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/syncserver/internal/logging"
	"github.com/dmitrijs2005/syncserver/internal/server/config"
	"github.com/dmitrijs2005/syncserver/internal/server/notify"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/syncserver/internal/server/services"
	"github.com/dmitrijs2005/syncserver/internal/server/storage"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/syncserver/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	syncService *services.SyncService
	closers     []func() error
}

type bucketEnsurer interface {
	EnsureBucket(ctx context.Context) error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := storage.New(ctx, c)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("object store init error: %w", err)
	}
	if be, ok := store.(bucketEnsurer); ok {
		if err := be.EnsureBucket(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("object store init error: %w", err)
		}
	}

	app := &App{config: c, logger: logger, db: db, closers: []func() error{db.Close}}

	var notifier notify.Publisher = notify.Nop{}
	if c.RedisAddr != "" {
		rc := notify.NewRedisClient(notify.RedisConfig{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB})
		notifier = notify.NewRedisPublisher(rc, c.NotifyChannelPrefix)
		app.closers = append(app.closers, rc.Close)
	}

	app.syncService = services.NewSyncService(db, rm, store, notifier, c, logger)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.syncService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddrGRPC)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	for _, c := range app.closers {
		if err := c(); err != nil {
			app.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	app.logger.Info(context.Background(), "Stopped")
}
