// Package signup implements the signup form workflow as an explicit state
// machine: local validation, identity account creation, then one profile row
// insert into the student table.
//
// Account creation and the row insert are not transactional. If the insert
// fails the account is left without a profile; that orphan is logged and
// reported, never compensated.
package signup

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/cryptox"
	"github.com/dmitrijs2005/ttioportal/internal/identity"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/orphans"
	"github.com/dmitrijs2005/ttioportal/internal/store"
)

// RedirectAfterSignup is where a successful signup sends the user.
const RedirectAfterSignup = "/login"

type Outcome struct {
	Redirect string
	UserID   string
}

type Workflow struct {
	provider     identity.Provider
	rows         store.Inserter
	reporter     orphans.Reporter
	log          logging.Logger
	now          func() time.Time
	hash         func([]byte) (string, error)
	onTransition func(from, to State)
}

type Option func(*Workflow)

func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

// WithOnTransition registers fn to observe every state change.
func WithOnTransition(fn func(from, to State)) Option {
	return func(w *Workflow) { w.onTransition = fn }
}

// WithPasswordHasher replaces the digest function applied to the password
// before it is written to the profile row.
func WithPasswordHasher(fn func([]byte) (string, error)) Option {
	return func(w *Workflow) { w.hash = fn }
}

func NewWorkflow(p identity.Provider, rows store.Inserter, r orphans.Reporter, l logging.Logger, opts ...Option) *Workflow {
	w := &Workflow{
		provider: p,
		rows:     rows,
		reporter: r,
		log:      l.With("module", "signup"),
		now:      time.Now,
		hash:     cryptox.HashPassword,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

func (w *Workflow) transition(f *Form, to State) {
	from := f.State
	f.State = to
	if w.onTransition != nil {
		w.onTransition(from, to)
	}
}

// Submit drives f through the state machine. The form restarts from Idle
// on every submit, so a failed form can be corrected and sent again.
//
// Once validation passes the external calls are detached from ctx
// cancellation: an account creation that was issued always gets its row
// insert attempted.
func (w *Workflow) Submit(ctx context.Context, f *Form) (*Outcome, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer f.inFlight.Store(false)

	f.Error = ""
	f.State = Idle

	w.transition(f, Validating)
	p := f.Profile()
	if verr := validate(&p); verr != nil {
		f.Error = verr.Message
		w.transition(f, ValidationFailed)
		return nil, verr
	}

	ctx = context.WithoutCancel(ctx)

	w.transition(f, CreatingIdentity)
	userID, err := w.provider.CreateAccount(ctx, p.Email, p.Password, p.IdentityMetadata())
	if err != nil {
		xerr := &ExternalError{Stage: StageIdentity, Message: identity.Message(err), Err: err}
		f.Error = xerr.Message
		w.log.Warn(ctx, "identity creation failed", "email", p.Email, "error", err)
		w.transition(f, IdentityFailed)
		return nil, xerr
	}

	w.transition(f, InsertingProfile)
	if err := w.insertProfile(ctx, &p); err != nil {
		xerr := &ExternalError{Stage: StageProfile, Message: MsgProfileFailed, UserID: userID, Err: err}
		f.Error = xerr.Message
		w.reportOrphan(ctx, userID, p.Email, err)
		w.transition(f, ProfileFailed)
		return nil, xerr
	}

	w.log.Info(ctx, "signup completed", "user_id", userID, "role", p.Role)
	w.transition(f, Redirecting)
	return &Outcome{Redirect: RedirectAfterSignup, UserID: userID}, nil
}

func (w *Workflow) insertProfile(ctx context.Context, p *models.SignupProfile) error {
	digest, err := w.hash([]byte(p.Password))
	if err != nil {
		return err
	}
	rec := models.NewStudentRecord(p, digest, w.now().UTC())
	return w.rows.Insert(ctx, common.StudentTable, rec.Fields())
}

func (w *Workflow) reportOrphan(ctx context.Context, userID, email string, cause error) {
	o := models.Orphan{
		UserID:     userID,
		Email:      email,
		Reason:     cause.Error(),
		DetectedAt: w.now().UTC(),
	}
	w.log.Error(ctx, "identity account created without student record",
		"user_id", userID, "email", email, "error", cause)

	if w.reporter == nil {
		return
	}
	if err := w.reporter.Report(ctx, o); err != nil {
		w.log.Error(ctx, "orphan report failed", "user_id", userID, "error", err)
	}
}
