package repository

import (
	"context"

	"fleetdesk/internal/domain/entity"
)

// UserRepository exposes the bulk-listable user directory used for recipient
// display and identifier reconciliation.
type UserRepository interface {
	// ListDirectory returns the full user directory.
	ListDirectory(ctx context.Context) ([]entity.UserRef, error)

	// FindByExternalID resolves a single directory user by opaque id.
	FindByExternalID(ctx context.Context, externalID string) (*entity.UserRef, error)
}
