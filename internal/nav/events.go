package nav

import "github.com/kingrea/profileflow/internal/validate"

// Event is one discrete UI occurrence.
type Event interface {
	event()
}

// LoginSubmitted carries the raw login fields.
type LoginSubmitted struct {
	Email    string
	Password string
}

// FormSubmitted carries the raw form fields.
type FormSubmitted struct {
	Input validate.FormInput
}

// BackRequested is the explicit back button on the details and not-found screens.
type BackRequested struct{}

// LogoutRequested ends the session.
type LogoutRequested struct{}

// RouteRequested asks for an arbitrary route string.
type RouteRequested struct {
	Path string
}

func (LoginSubmitted) event()  {}
func (FormSubmitted) event()   {}
func (BackRequested) event()   {}
func (LogoutRequested) event() {}
func (RouteRequested) event()  {}
