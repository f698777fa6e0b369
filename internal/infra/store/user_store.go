package store

import (
	"context"
	"net/url"

	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/repository"
)

const usersPath = "/api/items/users"

type userStore struct {
	client *Client
}

// NewUserRepository creates the store-backed user directory repository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userStore{client: client}
}

func (s *userStore) ListDirectory(ctx context.Context) ([]entity.UserRef, error) {
	query := url.Values{}
	query.Set("limit", "-1")

	var ms []userModel
	if err := s.client.get(ctx, usersPath, query, &ms); err != nil {
		return nil, err
	}

	out := make([]entity.UserRef, 0, len(ms))
	for i := range ms {
		out = append(out, ms[i].toEntity())
	}

	return out, nil
}

func (s *userStore) FindByExternalID(ctx context.Context, externalID string) (*entity.UserRef, error) {
	var m userModel
	if err := s.client.get(ctx, usersPath+"/ext/"+url.PathEscape(externalID), nil, &m); err != nil {
		return nil, err
	}

	u := m.toEntity()

	return &u, nil
}
