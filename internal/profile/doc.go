// Package profile holds the single record of user-entered data that travels
// between the login, form and details screens. The record is owned by the
// navigation controller and is never shared across goroutines.
package profile
