package nav

import (
	"strings"

	"github.com/kingrea/profileflow/internal/profile"
	"github.com/kingrea/profileflow/internal/route"
	"github.com/kingrea/profileflow/internal/screen"
	"github.com/kingrea/profileflow/internal/validate"
)

// Journal receives a line per transition. *logbook.Logbook satisfies it.
type Journal interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// Outcome is the result of handling one event.
type Outcome struct {
	Screen screen.Description
	// Errors and Banner are set when input was rejected; the route is unchanged.
	Errors []validate.FieldError
	Banner string
	// Changed reports whether the visible route changed.
	Changed bool
}

// Rejected reports whether the event was refused because of bad input.
func (o Outcome) Rejected() bool {
	return len(o.Errors) > 0
}

// Option customizes a Controller.
type Option func(*Controller)

// WithJournal attaches a journal for transition logging.
func WithJournal(j Journal) Option {
	return func(c *Controller) {
		if j != nil {
			c.journal = j
		}
	}
}

// WithStartPath sets the route shown before any event. It goes through the
// same login guard as every other navigation.
func WithStartPath(path string) Option {
	return func(c *Controller) {
		c.startPath = path
	}
}

// Controller is the navigation state machine.
type Controller struct {
	store     *profile.Store
	current   route.Route
	journal   Journal
	startPath string
}

// New builds a controller around store. A nil store gets a fresh one with
// the retain policy.
func New(store *profile.Store, opts ...Option) *Controller {
	if store == nil {
		store = profile.NewStore(profile.ClearRetain)
	}
	c := &Controller{store: store, current: route.Login}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.startPath != "" {
		c.current = c.guard(route.Parse(c.startPath))
	}
	return c
}

// Current returns the active route.
func (c *Controller) Current() route.Route {
	return c.current
}

// Profile returns a copy of the profile record.
func (c *Controller) Profile() profile.Record {
	return c.store.Get()
}

// Resolve describes the active route without changing anything.
func (c *Controller) Resolve() screen.Description {
	return screen.Describe(c.current, c.store.Get())
}

// Navigate replaces the active route with the one parsed from path.
func (c *Controller) Navigate(path string) screen.Description {
	c.goTo(route.Parse(path))
	return c.Resolve()
}

// Dispatch handles one event synchronously.
func (c *Controller) Dispatch(ev Event) Outcome {
	before := c.current
	var out Outcome
	switch e := ev.(type) {
	case LoginSubmitted:
		out = c.login(e)
	case FormSubmitted:
		out = c.submitForm(e)
	case BackRequested:
		c.back()
	case LogoutRequested:
		c.logout()
	case RouteRequested:
		c.goTo(route.Parse(e.Path))
	default:
		c.warn("Ignored unknown event %T", ev)
	}
	out.Screen = c.Resolve()
	out.Changed = c.current != before
	return out
}

func (c *Controller) login(e LoginSubmitted) Outcome {
	if c.current != route.Login {
		c.warn("Login submitted from %s; ignored", c.current)
		return Outcome{}
	}
	data, errs := validate.Login(e.Email, e.Password)
	if len(errs) > 0 {
		c.info("Login rejected · %d field(s) missing", len(errs))
		return Outcome{Errors: errs, Banner: validate.LoginBanner}
	}
	c.store.Set(profile.Patch{Email: &data.Email})
	c.info("Login accepted for %s", data.Email)
	c.goTo(route.Form)
	return Outcome{}
}

func (c *Controller) submitForm(e FormSubmitted) Outcome {
	if c.current != route.Form {
		c.warn("Form submitted from %s; ignored", c.current)
		return Outcome{}
	}
	data, errs := validate.Form(e.Input)
	if len(errs) > 0 {
		c.info("Form rejected · %d problem(s)", len(errs))
		return Outcome{Errors: errs, Banner: strings.Join(validate.Messages(errs), "\n")}
	}
	c.store.Set(profile.Patch{
		FullName:    &data.Name,
		DateOfBirth: &data.DOB,
		Gender:      &data.Gender,
		Address:     &data.Address,
		Country:     &data.Country,
	})
	c.info("Form accepted")
	c.goTo(route.Details)
	return Outcome{}
}

func (c *Controller) back() {
	switch c.current.Kind() {
	case route.KindDetails, route.KindNotFound:
		c.goTo(route.Login)
	default:
		c.warn("Back requested on %s; ignored", c.current)
	}
}

func (c *Controller) logout() {
	c.store.Clear()
	c.info("Logged out (policy: %s)", c.store.Policy())
	c.goTo(route.Login)
}

func (c *Controller) goTo(next route.Route) {
	next = c.guard(next)
	if next != c.current {
		c.info("Route %s -> %s", c.current.Path(), next.Path())
	}
	c.current = next
}

// guard keeps screens that need a session out of reach until login.
func (c *Controller) guard(r route.Route) route.Route {
	if r.RequiresLogin() && !c.store.Get().LoggedIn() {
		c.warn("Route %s requires login; showing login", r.Path())
		return route.Login
	}
	return r
}

func (c *Controller) info(format string, args ...any) {
	if c.journal == nil {
		return
	}
	c.journal.Info(format, args...)
}

func (c *Controller) warn(format string, args ...any) {
	if c.journal == nil {
		return
	}
	c.journal.Warn(format, args...)
}
