// Package common defines shared constants and sentinel errors used across
// the WIP client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth-specific errors.
	ErrMissingUserID    = errors.New("auth response carries no user id")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Validation errors raised before any network call.
	ErrValidation = errors.New("validation error")
)
