// Package server initializes and runs the wordvault server: it selects a
// storage backend from the configuration, wires the services, and starts
// the HTTP endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ivanosipov/wordvault/internal/logging"
	"github.com/ivanosipov/wordvault/internal/server/config"
	"github.com/ivanosipov/wordvault/internal/server/httpapi"
	"github.com/ivanosipov/wordvault/internal/server/shared/db"
	"github.com/ivanosipov/wordvault/internal/server/users"
	"github.com/ivanosipov/wordvault/internal/server/words"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	wordService *words.Service
}

// newRepositoryManager selects the storage backend: PostgreSQL when a DSN
// is configured, in-process maps otherwise.
func newRepositoryManager(c *config.Config) (db.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		return db.NewInMemoryRepositoryManager(), nil
	}
	return db.NewPostgresRepositoryManager(c.DatabaseDSN)
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	m, err := newRepositoryManager(c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us, err := users.NewService(m.Users(), c)
	if err != nil {
		return nil, fmt.Errorf("user service init error: %w", err)
	}
	ws := words.NewService(m.Words())

	return &App{config: c, logger: logger, userService: us, wordService: ws}, nil
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

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.wordService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
