// Package route maps route strings onto the closed set of screens.
package route

import "fmt"

// Kind identifies a screen.
type Kind int

const (
	KindLogin Kind = iota
	KindForm
	KindDetails
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindLogin:
		return "login"
	case KindForm:
		return "form"
	case KindDetails:
		return "details"
	case KindNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Canonical paths.
const (
	PathLogin   = "/"
	PathForm    = "/form"
	PathDetails = "/details"
)

// Route is a resolved route. Only NotFound routes carry a path of their own.
type Route struct {
	kind Kind
	path string
}

var (
	Login   = Route{kind: KindLogin}
	Form    = Route{kind: KindForm}
	Details = Route{kind: KindDetails}
)

// NotFound builds the route for an unmatched path.
func NotFound(path string) Route {
	return Route{kind: KindNotFound, path: path}
}

// Parse resolves a route string. It never fails: unknown paths become NotFound.
func Parse(path string) Route {
	switch path {
	case "", PathLogin:
		return Login
	case PathForm:
		return Form
	case PathDetails:
		return Details
	default:
		return NotFound(path)
	}
}

// Kind returns the screen this route selects.
func (r Route) Kind() Kind { return r.kind }

// Path returns the canonical path, or the unmatched path for NotFound.
func (r Route) Path() string {
	switch r.kind {
	case KindForm:
		return PathForm
	case KindDetails:
		return PathDetails
	case KindNotFound:
		return r.path
	default:
		return PathLogin
	}
}

// RequiresLogin reports whether the route may only be shown to a logged-in user.
func (r Route) RequiresLogin() bool {
	return r.kind == KindForm || r.kind == KindDetails
}

func (r Route) String() string {
	if r.kind == KindNotFound {
		return fmt.Sprintf("%s(%s)", r.kind, r.path)
	}
	return r.kind.String()
}
