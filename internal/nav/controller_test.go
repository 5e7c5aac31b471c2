package nav

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kingrea/profileflow/internal/profile"
	"github.com/kingrea/profileflow/internal/route"
	"github.com/kingrea/profileflow/internal/validate"
)

var routeComparer = cmp.Comparer(func(a, b route.Route) bool { return a == b })

type recordingJournal struct {
	lines []string
}

func (j *recordingJournal) Info(format string, args ...any) {
	j.lines = append(j.lines, "INFO "+fmt.Sprintf(format, args...))
}

func (j *recordingJournal) Warn(format string, args ...any) {
	j.lines = append(j.lines, "WARN "+fmt.Sprintf(format, args...))
}

func validForm() validate.FormInput {
	return validate.FormInput{Name: "Jo", DOB: "1990-05-01", Gender: "Other", Address: "1 Main St", Country: "India"}
}

func loggedIn(t *testing.T, policy profile.ClearPolicy) *Controller {
	t.Helper()
	c := New(profile.NewStore(policy))
	out := c.Dispatch(LoginSubmitted{Email: "u@x.com", Password: "p"})
	if out.Rejected() {
		t.Fatalf("login rejected: %v", out.Errors)
	}
	return c
}

func TestInitialRouteIsLogin(t *testing.T) {
	c := New(nil)
	if c.Current() != route.Login {
		t.Fatalf("initial route = %v, want login", c.Current())
	}
	if got := c.Resolve().Title; got != "Login" {
		t.Fatalf("initial title = %q", got)
	}
}

func TestEndToEndFlow(t *testing.T) {
	c := New(nil)
	out := c.Dispatch(LoginSubmitted{Email: "u@x.com", Password: "p"})
	if !out.Changed || c.Current() != route.Form {
		t.Fatalf("login should move to form, got %v", c.Current())
	}
	out = c.Dispatch(FormSubmitted{Input: validate.FormInput{Name: "Jo", DOB: "1990-05-01", Gender: "Other", Country: "India"}})
	if out.Rejected() {
		t.Fatalf("form rejected: %v", out.Errors)
	}
	if c.Current() != route.Details {
		t.Fatalf("form should move to details, got %v", c.Current())
	}
	lines := out.Screen.Lines
	for _, want := range []string{"Name: Jo", "Date of birth: 1990-05-01", "Gender: Other", "Country: India"} {
		found := false
		for _, line := range lines {
			if line == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("details missing %q in %v", want, lines)
		}
	}
}

func TestLoginRejectionKeepsRouteAndRecord(t *testing.T) {
	c := New(nil)
	out := c.Dispatch(LoginSubmitted{Email: " ", Password: ""})
	if !out.Rejected() || out.Changed {
		t.Fatalf("expected rejection without route change, got %v", out)
	}
	if out.Banner != validate.LoginBanner {
		t.Fatalf("banner = %q", out.Banner)
	}
	if len(out.Errors) != 2 {
		t.Fatalf("errors = %v, want email and password", out.Errors)
	}
	if c.Profile().LoggedIn() {
		t.Fatalf("rejected login must not set email")
	}
}

func TestFormRejectionReportsEveryProblem(t *testing.T) {
	c := loggedIn(t, profile.ClearRetain)
	out := c.Dispatch(FormSubmitted{})
	if len(out.Errors) != 4 {
		t.Fatalf("errors = %v, want 4", out.Errors)
	}
	if strings.Count(out.Banner, "\n") != 3 {
		t.Fatalf("banner should list every problem, got %q", out.Banner)
	}
	if c.Current() != route.Form {
		t.Fatalf("route changed on rejection: %v", c.Current())
	}
	if c.Profile().FullName != "" {
		t.Fatalf("rejected form must not merge fields")
	}
}

func TestUnknownRouteResolvesNotFoundWithoutMutation(t *testing.T) {
	c := loggedIn(t, profile.ClearRetain)
	before := c.Profile()
	desc := c.Navigate("/unknown/path")
	if desc.Route.Kind() != route.KindNotFound || desc.Route.Path() != "/unknown/path" {
		t.Fatalf("route = %v", desc.Route)
	}
	if diff := cmp.Diff(before, c.Profile()); diff != "" {
		t.Fatalf("profile mutated (-before +after):\n%s", diff)
	}
	out := c.Dispatch(BackRequested{})
	if c.Current() != route.Login || !out.Changed {
		t.Fatalf("back from not found should land on login, got %v", c.Current())
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	c := loggedIn(t, profile.ClearRetain)
	c.Dispatch(FormSubmitted{Input: validForm()})
	first := c.Resolve()
	second := c.Resolve()
	if diff := cmp.Diff(first, second, routeComparer); diff != "" {
		t.Fatalf("resolve not idempotent:\n%s", diff)
	}
}

func TestGoBackFromDetailsKeepsSession(t *testing.T) {
	c := loggedIn(t, profile.ClearRetain)
	c.Dispatch(FormSubmitted{Input: validForm()})
	c.Dispatch(BackRequested{})
	if c.Current() != route.Login {
		t.Fatalf("go back should land on login, got %v", c.Current())
	}
	rec := c.Profile()
	if !rec.LoggedIn() || *rec.Email != "u@x.com" {
		t.Fatalf("go back must not log out")
	}
	email, _ := c.Resolve().Field(validate.FieldEmail)
	if email.Value != "u@x.com" {
		t.Fatalf("login email prefill = %q", email.Value)
	}
}

func TestLogoutRetainPolicyKeepsPrefill(t *testing.T) {
	c := loggedIn(t, profile.ClearRetain)
	c.Dispatch(FormSubmitted{Input: validForm()})
	c.Dispatch(LogoutRequested{})
	if c.Current() != route.Login {
		t.Fatalf("logout should land on login")
	}
	if c.Profile().LoggedIn() {
		t.Fatalf("logout must clear the email")
	}
	c.Dispatch(LoginSubmitted{Email: "other@x.com", Password: "p"})
	name, _ := c.Resolve().Field(validate.FieldName)
	if name.Value != "Jo" {
		t.Fatalf("retain policy should prefill name, got %q", name.Value)
	}
}

func TestLogoutErasePolicyClearsForm(t *testing.T) {
	c := loggedIn(t, profile.ClearErase)
	c.Dispatch(FormSubmitted{Input: validForm()})
	c.Dispatch(LogoutRequested{})
	c.Dispatch(LoginSubmitted{Email: "other@x.com", Password: "p"})
	name, _ := c.Resolve().Field(validate.FieldName)
	if name.Value != "" {
		t.Fatalf("erase policy should leave the form empty, got %q", name.Value)
	}
}

func TestGuardRedirectsWhileLoggedOut(t *testing.T) {
	journal := &recordingJournal{}
	c := New(nil, WithJournal(journal))
	for _, path := range []string{"/form", "/details"} {
		desc := c.Navigate(path)
		if desc.Route != route.Login {
			t.Fatalf("Navigate(%q) while logged out = %v, want login", path, desc.Route)
		}
	}
	warned := false
	for _, line := range journal.lines {
		if strings.HasPrefix(line, "WARN ") && strings.Contains(line, "requires login") {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("expected guard warning in journal, got %v", journal.lines)
	}
}

func TestStartPathHonorsGuard(t *testing.T) {
	if got := New(nil, WithStartPath("/details")).Current(); got != route.Login {
		t.Fatalf("guarded start path = %v, want login", got)
	}
	if got := New(nil, WithStartPath("/missing")).Current(); got.Kind() != route.KindNotFound {
		t.Fatalf("unknown start path = %v, want not found", got)
	}
}

func TestFormRevisitPrefillsLastSubmission(t *testing.T) {
	c := loggedIn(t, profile.ClearRetain)
	c.Dispatch(FormSubmitted{Input: validForm()})
	desc := c.Navigate("/form")
	dob, _ := desc.Field(validate.FieldDOB)
	if dob.Value != "1990-05-01" {
		t.Fatalf("dob prefill = %q", dob.Value)
	}
}

func TestJournalNeverRecordsPassword(t *testing.T) {
	journal := &recordingJournal{}
	c := New(nil, WithJournal(journal))
	c.Dispatch(LoginSubmitted{Email: "u@x.com", Password: "hunter2"})
	for _, line := range journal.lines {
		if strings.Contains(line, "hunter2") {
			t.Fatalf("password leaked into journal: %q", line)
		}
	}
}

func TestSubmitOutsideOwningScreenIsIgnored(t *testing.T) {
	c := New(nil)
	out := c.Dispatch(FormSubmitted{Input: validForm()})
	if out.Changed || c.Profile().FullName != "" {
		t.Fatalf("form submit on login screen should be ignored")
	}
}
