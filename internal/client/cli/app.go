package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/client/client"
	"github.com/dmitrijs2005/ttioportal/internal/client/config"
	"github.com/dmitrijs2005/ttioportal/internal/client/repositories/kv"
	"github.com/dmitrijs2005/ttioportal/internal/filex"
	"github.com/dmitrijs2005/ttioportal/internal/hosted"
	"github.com/dmitrijs2005/ttioportal/internal/identity"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/orphans"
	"github.com/dmitrijs2005/ttioportal/internal/session"
	"github.com/dmitrijs2005/ttioportal/internal/store"
	"github.com/dmitrijs2005/ttioportal/internal/workflow/login"
	"github.com/dmitrijs2005/ttioportal/internal/workflow/signup"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type backend interface {
	identity.Provider
	store.Store
	pinger
}

// tokenAware backends present the signed in user's access token.
type tokenAware interface {
	SetTokenSource(fn func(context.Context) string)
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	out      io.Writer
	reader   *bufio.Reader
	login    *login.Workflow
	signup   *signup.Workflow
	sessions session.Store
	pinger   pinger
	closers  []io.Closer

	mu   sync.RWMutex
	user *models.AuthenticatedUser
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.FormatText, slog.LevelWarn)

	if err := filex.EnsureParentDir(c.SessionDB); err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	be, reporter, closers, err := newBackend(c, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		config:   c,
		logger:   logger,
		out:      os.Stdout,
		reader:   bufio.NewReader(os.Stdin),
		sessions: session.NewKVStore(kv.NewSQLiteRepository(db)),
		pinger:   be,
		closers:  append(closers, db),
	}
	app.wire(newAuthenticator(c, be), be, be, reporter)
	if t, ok := be.(tokenAware); ok {
		t.SetTokenSource(app.accessToken)
	}
	return app, nil
}

func newBackend(c *config.Config, logger logging.Logger) (backend, orphans.Reporter, []io.Closer, error) {
	logReporter := orphans.NewLogReporter(logger)

	switch c.Backend {
	case config.BackendHosted:
		hc := hosted.New(c.HostedURL, c.APIKey, hosted.WithLogger(logger))
		return hc, logReporter, nil, nil
	default:
		gc, err := client.NewGRPCClient(c.ServerEndpointAddr, c.APIKey, client.DefaultCallTimeout)
		if err != nil {
			return nil, nil, nil, err
		}
		return gc, orphans.Multi{logReporter, gc}, []io.Closer{gc}, nil
	}
}

func newAuthenticator(c *config.Config, p identity.Provider) identity.Authenticator {
	if c.AuthMode == config.AuthModeProvider {
		return identity.NewProviderAuthenticator(p)
	}
	return identity.NewDemoAllowlist(identity.DemoStudent, identity.DemoProfessor)
}

// wire builds the workflows on top of the app's session store.
func (a *App) wire(auth identity.Authenticator, p identity.Provider, rows store.Inserter, reporter orphans.Reporter) {
	a.login = login.NewWorkflow(auth, a.sessions, a.logger, login.WithDelay(a.config.LoginDelay))
	a.signup = signup.NewWorkflow(p, rows, reporter, a.logger, signup.WithOnTransition(a.printTransition))
}

func (a *App) printTransition(_, to signup.State) {
	switch to {
	case signup.CreatingIdentity:
		fmt.Fprintln(a.out, "Creating account...")
	case signup.InsertingProfile:
		fmt.Fprintln(a.out, "Saving profile...")
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Warn(context.Background(), "backend status changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setUser(u *models.AuthenticatedUser) {
	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
}

func (a *App) currentUser() *models.AuthenticatedUser {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

// accessToken is the token of the signed in user, if the backend issued one.
func (a *App) accessToken(context.Context) string {
	if u := a.currentUser(); u != nil {
		return u.AccessToken
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}

func (a *App) Run(ctx context.Context) {
	defer a.close()
	a.Root(ctx)
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is
// done and records whether it answered.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.pinger.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
