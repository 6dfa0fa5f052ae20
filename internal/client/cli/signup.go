package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/workflow/signup"
)

// Signup walks the user through the signup form and submits it. Missing
// answers are left empty so that the workflow reports them.
func (a *App) Signup(ctx context.Context) error {
	f := &signup.Form{}
	if err := a.fillSignupForm(f); err != nil {
		return err
	}

	out, err := a.signup.Submit(ctx, f)
	if err != nil {
		fmt.Fprintln(a.out, f.Error)
		return err
	}

	fmt.Fprintf(a.out, "Account created. Redirecting to %s\n", out.Redirect)
	return nil
}

func (a *App) fillSignupForm(f *signup.Form) error {
	var err error

	if f.FirstName, err = GetSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if f.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if f.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	f.Password = string(password)
	common.WipeByteArray(password)

	labels := make([]string, len(models.Roles))
	for i, r := range models.Roles {
		labels[i] = r.Label()
	}
	idx, err := GetChoice(a.reader, "Role", labels, a.out)
	if err != nil {
		return err
	}
	if idx >= 0 {
		f.Role = models.Roles[idx]
	}

	if f.Newsletter, err = GetYesNo(a.reader, "Subscribe to the newsletter?", a.out); err != nil {
		return err
	}

	if err := a.pickInterests(f); err != nil {
		return err
	}

	f.TermsAccepted, err = GetYesNo(a.reader, "Do you accept the Terms of Service and Privacy Policy?", a.out)
	return err
}

// pickInterests toggles each tag the user names, by number or by tag.
func (a *App) pickInterests(f *signup.Form) error {
	prompt := "Interests (numbers or tags, comma separated, empty for none)"
	for i, tag := range models.InterestTags {
		prompt += fmt.Sprintf("\n  %d) %s", i+1, tag)
	}

	answer, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	for _, tok := range splitList(answer) {
		tag := tok
		if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= len(models.InterestTags) {
			tag = models.InterestTags[n-1]
		}
		if !isInterestTag(tag) {
			fmt.Fprintf(a.out, "Ignoring unknown interest %q\n", tok)
			continue
		}
		f.ToggleInterest(tag)
	}
	return nil
}

func isInterestTag(tag string) bool {
	for _, t := range models.InterestTags {
		if t == tag {
			return true
		}
	}
	return false
}
