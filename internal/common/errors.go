// Package common defines shared constants and sentinel errors used across
// primezone layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Storage bootstrap.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// Session / authorization.
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrForbidden     = errors.New("forbidden")
	ErrUnknownMember = errors.New("unknown member")
)
