// Package cli implements the interactive wordvault client: a small REPL for
// registering, logging in, and maintaining the personal word list.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/ivanosipov/wordvault/internal/client/api"
	"github.com/ivanosipov/wordvault/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerBaseURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
