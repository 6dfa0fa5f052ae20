package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ttioportal/internal/common"
)

func (a *App) getStatus() string {
	s := ""
	if u := a.currentUser(); u != nil {
		s = u.Email + " "
	}
	if m := a.currentMode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// restoreSession picks up the user signed in by a previous run.
func (a *App) restoreSession(ctx context.Context) {
	u, err := a.sessions.Read(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			a.logger.Warn(ctx, "session restore failed", "error", err)
		}
		return
	}
	a.setUser(u)
}

func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to the TTIO portal CLI (type 'help' for commands)")

	a.restoreSession(ctx)

	if a.config.OnlineCheckInterval > 0 {
		a.checkOnline(ctx)
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
