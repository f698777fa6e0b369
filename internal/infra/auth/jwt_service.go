// Package auth provides the JWT-backed caller identity resolution.
package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"fleetdesk/config"
	"fleetdesk/internal/domain/repository"
	"fleetdesk/internal/domain/service"
)

// jwtIdentityService resolves an opaque session token into the caller's
// directory profile. Token validation failures map to ErrNoSession; a valid
// token whose subject is unknown to the directory maps to ErrProfileMissing,
// which callers must treat as a distinct outcome.
type jwtIdentityService struct {
	accessSecret string
	users        repository.UserRepository
}

// NewJWTIdentityService is the constructor for jwtIdentityService.
func NewJWTIdentityService(cfg *config.Config, users repository.UserRepository) (service.IdentityService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtIdentityService{
		accessSecret: cfg.SecretKey.Access,
		users:        users,
	}, nil
}

// ResolveCaller validates the session token and looks up the caller profile.
func (s *jwtIdentityService) ResolveCaller(ctx context.Context, token string) (*service.CallerProfile, error) {
	if token == "" {
		return nil, service.ErrNoSession
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, service.ErrNoSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrNoSession
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, service.ErrNoSession
	}

	user, err := s.users.FindByExternalID(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, service.ErrProfileMissing
		}

		return nil, err
	}

	return &service.CallerProfile{
		UserID:      user.ID,
		ExternalID:  user.ExternalID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
	}, nil
}
