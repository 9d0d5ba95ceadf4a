// Package httpapi exposes the wordvault services over HTTP/JSON. The
// transport stays thin: handlers decode payloads, call the services, and
// map sentinel errors to status codes. All authentication-adjacent
// failures surface as one undifferentiated 401.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ivanosipov/wordvault/internal/logging"
	"github.com/ivanosipov/wordvault/internal/server/users"
	"github.com/ivanosipov/wordvault/internal/server/words"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	users   *users.Service
	words   *words.Service
}

func NewServer(address string, l logging.Logger, us *users.Service, ws *words.Service) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		users:   us,
		words:   ws,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
