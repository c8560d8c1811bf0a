// Package cli implements the interactive terminal client for Refuture.
// Views mirror the web application's route surface; every navigation runs
// through the route guard before anything is rendered.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/api"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/config"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/guard"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/session"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/settings"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/storage"
	"github.com/vincenttwizere/Refuture-sub002/internal/logging"
)

type App struct {
	config   *config.Config
	store    *storage.Store
	api      api.Client
	session  *session.Store
	settings *settings.Service
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// path is the current navigation target, updated only by navigate.
	path string
}

func NewApp(c *config.Config) (*App, error) {
	store, err := storage.Open(c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("opening local storage: %w", err)
	}

	log := logging.NewText(os.Stderr)
	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	sess := session.NewStore(apiClient, store, log)
	prefs := settings.NewService(apiClient, store, sess, log)

	return &App{
		config:   c,
		store:    store,
		api:      apiClient,
		session:  sess,
		settings: prefs,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		path:     guard.PathLanding,
	}, nil
}

// Run hydrates the session from the persisted token, shows the landing
// view, and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	a.session.Hydrate(ctx)

	fmt.Fprintln(a.out, "Welcome to Refuture (type 'help' for commands)")
	a.navigate(ctx, guard.PathLanding)

	a.repl(ctx, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status builds the REPL prompt suffix, e.g. "(amina@example.org refugee)".
func (a *App) status() string {
	snap := a.session.Snapshot()
	if snap.Loading {
		return "(loading)"
	}
	if snap.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", snap.User.Email, snap.User.Role)
}
