// Package login implements the login form workflow: a delayed credential
// check, a session write on success and role based routing.
package login

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/identity"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/session"
)

const (
	DestinationStudent   = "/dashboard/student"
	DestinationProfessor = "/dashboard/professor"

	DefaultDelay = 500 * time.Millisecond
)

// User-visible messages written into Form.Error.
const (
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgUnavailable        = "Authentication service unavailable. Please try again later."
	MsgUnexpected         = "Something went wrong. Please try again."
)

var (
	// ErrInvalidCredentials is the only error a refused credential pair
	// produces, whatever the reason for the refusal.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrSubmissionInFlight = errors.New("login already in progress")
)

// Result is the outcome of a successful login.
type Result struct {
	Role        models.Role
	Destination string
	User        *models.AuthenticatedUser
}

// Destination returns the dashboard path for role.
func Destination(role models.Role) string {
	if role.IsStudent() {
		return DestinationStudent
	}
	return DestinationProfessor
}

var sleep = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type Workflow struct {
	auth     identity.Authenticator
	sessions session.Writer
	delay    time.Duration
	log      logging.Logger
}

type Option func(*Workflow)

// WithDelay overrides the pause taken before every credential check.
func WithDelay(d time.Duration) Option {
	return func(w *Workflow) { w.delay = d }
}

func NewWorkflow(auth identity.Authenticator, sessions session.Writer, l logging.Logger, opts ...Option) *Workflow {
	w := &Workflow{
		auth:     auth,
		sessions: sessions,
		delay:    DefaultDelay,
		log:      l.With("module", "login"),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// SubmitLogin checks email/password and, on success, writes the session
// record. No session is written on any error path.
func (w *Workflow) SubmitLogin(ctx context.Context, email, password string) (*Result, error) {
	if err := sleep(ctx, w.delay); err != nil {
		return nil, err
	}

	user, err := w.auth.Check(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrUnavailable) {
			w.log.Warn(ctx, "authentication unavailable", "error", err)
			return nil, err
		}
		w.log.Debug(ctx, "login refused")
		return nil, ErrInvalidCredentials
	}

	if err := w.sessions.Write(ctx, user); err != nil {
		w.log.Error(ctx, "session write failed", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	w.log.Info(ctx, "login succeeded", "role", user.Role)
	return &Result{Role: user.Role, Destination: Destination(user.Role), User: user}, nil
}

// Form is the state of the login form.
type Form struct {
	Email    string
	Password string
	Error    string
	Loading  bool

	inFlight atomic.Bool
}

// InFlight reports whether a Submit on f has not returned yet.
func (f *Form) InFlight() bool { return f.inFlight.Load() }

// Submit runs SubmitLogin with the form's fields. It clears Error first and
// keeps Loading set until the check returns; a failure's message ends up in
// Error.
func (w *Workflow) Submit(ctx context.Context, f *Form) (*Result, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer f.inFlight.Store(false)

	f.Error = ""
	f.Loading = true
	defer func() { f.Loading = false }()

	res, err := w.SubmitLogin(ctx, f.Email, f.Password)
	if err != nil {
		f.Error = UserMessage(err)
		return nil, err
	}
	return res, nil
}

// UserMessage maps a SubmitLogin error to the text shown on the form.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, identity.ErrUnavailable):
		return MsgUnavailable
	default:
		return MsgUnexpected
	}
}

// Demo credential kinds accepted by FillDemoCredentials.
const (
	DemoStudent   = "student"
	DemoProfessor = "professor"
)

// FillDemoCredentials copies the demo pair of kind into f and clears any
// error. It only touches the form.
func FillDemoCredentials(f *Form, kind string) error {
	var e identity.DemoEntry
	switch strings.ToLower(kind) {
	case DemoStudent:
		e = identity.DemoStudent
	case DemoProfessor:
		e = identity.DemoProfessor
	default:
		return fmt.Errorf("unknown demo account %q", kind)
	}
	f.Email = e.Email
	f.Password = e.Password
	f.Error = ""
	return nil
}
