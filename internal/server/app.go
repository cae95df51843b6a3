// Package server wires configuration, storage and services together and runs
// the HTTP API and gRPC health endpoint until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/invtrack/internal/logging"
	"github.com/dmitrijs2005/invtrack/internal/server/auth"
	"github.com/dmitrijs2005/invtrack/internal/server/config"
	"github.com/dmitrijs2005/invtrack/internal/server/httpapi"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/invtrack/internal/server/services"

	gs "github.com/dmitrijs2005/invtrack/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	repos     repomanager.RepositoryManager
	gateway   *services.AuthGateway
	inventory *services.InventoryService
}

// newRepositoryManager is replaced in tests.
var newRepositoryManager = repomanager.New

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel, c.LogFormat)

	rm, err := newRepositoryManager(ctx, c.StoreDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	gw := services.NewAuthGateway(services.NewCredentialStore(rm.Users()), tokens)
	inv := services.NewInventoryService(rm.Inventory())

	return &App{config: c, logger: logger, repos: rm, gateway: gw, inventory: inv}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.gateway, app.inventory, app.repos, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, httpapi.NewRouter(h, app.config.MaxBodyBytes), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.repos, gs.DefaultProbeInterval)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a server fails,
// then closes the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.StoreDriver)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
