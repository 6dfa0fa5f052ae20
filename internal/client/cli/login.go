package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/workflow/login"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetRawText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f := &login.Form{Email: email, Password: string(password)}
	return a.submitLogin(ctx, f)
}

// Demo signs in with one of the built-in demo accounts.
func (a *App) Demo(ctx context.Context, kind string) error {
	f := &login.Form{}
	if err := login.FillDemoCredentials(f, kind); err != nil {
		fmt.Fprintf(a.out, "Usage: demo <%s|%s>\n", login.DemoStudent, login.DemoProfessor)
		return err
	}
	fmt.Fprintf(a.out, "Using demo account %s\n", f.Email)
	return a.submitLogin(ctx, f)
}

func (a *App) submitLogin(ctx context.Context, f *login.Form) error {
	fmt.Fprintln(a.out, "Signing in...")

	res, err := a.login.Submit(ctx, f)
	if err != nil {
		fmt.Fprintln(a.out, f.Error)
		return err
	}

	a.setUser(res.User)
	fmt.Fprintf(a.out, "Signed in as %s (%s). Redirecting to %s\n", res.User.Email, res.Role.Label(), res.Destination)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.sessions.Read(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if err != nil {
		fmt.Fprintln(a.out, "Could not read session.")
		return err
	}

	fmt.Fprintf(a.out, "%s (%s), dashboard %s\n", u.Email, u.Role.Label(), login.Destination(u.Role))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not clear session.")
		return err
	}
	a.setUser(nil)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
