// Package nav is the navigation controller. It owns the profile record and
// the current route, consumes one event at a time, and hands back the
// description of the screen that should be visible afterwards.
//
// There is no history stack: every transition replaces the current route and
// the screen is described again from scratch.
package nav
