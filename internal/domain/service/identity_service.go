package service

import (
	"context"
	"errors"
)

var (
	// ErrNoSession is returned when no valid session token is present.
	ErrNoSession = errors.New("no valid session")
	// ErrProfileMissing is returned when the session is valid but the caller
	// profile cannot be found. Kept distinct from ErrNoSession on purpose.
	ErrProfileMissing = errors.New("caller profile missing")
)

// CallerProfile is the resolved identity of the acting user.
type CallerProfile struct {
	UserID      int64  `json:"user_id"`
	ExternalID  string `json:"external_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// IdentityService resolves an opaque session token to the caller's profile.
type IdentityService interface {
	// ResolveCaller validates the token and returns the caller profile.
	ResolveCaller(ctx context.Context, token string) (*CallerProfile, error)
}
