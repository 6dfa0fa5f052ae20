// Package server wires the portal backend: it opens PostgreSQL, applies
// migrations, builds the services and serves them over gRPC until the
// process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/server/config"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ttioportal/internal/server/services"
	"github.com/dmitrijs2005/ttioportal/internal/telemetry"

	gs "github.com/dmitrijs2005/ttioportal/internal/server/grpc"
)

const serviceName = "ttioportal-server"

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	accounts      *services.AccountService
	rows          *services.RowService
	orphans       *services.OrphanService
	traceShutdown func(context.Context) error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, logging.FormatJSON, slog.LevelInfo)

	shutdown, err := telemetry.Setup(ctx, serviceName, c.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	db, err := repomanager.OpenDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		accounts:      services.NewAccountService(db, rm, c, logger),
		rows:          services.NewRowService(db, rm, logger),
		orphans:       services.NewOrphanService(db, rm, c, logger),
		traceShutdown: shutdown,
	}, nil
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
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts, app.rows, app.orphans,
		app.config.SecretKey, app.config.APIKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.traceShutdown(context.Background()); err != nil {
		app.logger.Warn(ctx, "trace shutdown failed", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
