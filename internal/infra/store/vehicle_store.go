package store

import (
	"context"
	"net/url"
	"time"

	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/repository"
)

const vehiclesPath = "/api/items/vehicles"

type vehicleStore struct {
	client *Client
}

// NewVehicleRepository creates the store-backed vehicle repository.
func NewVehicleRepository(client *Client) repository.VehicleRepository {
	return &vehicleStore{client: client}
}

func (s *vehicleStore) FindByReference(ctx context.Context, ref string) (*entity.Vehicle, error) {
	var m vehicleModel
	if err := s.client.get(ctx, vehiclesPath+"/"+url.PathEscape(ref), nil, &m); err != nil {
		return nil, err
	}

	return m.toEntity(), nil
}

func (s *vehicleStore) SetNextMaintenanceDate(ctx context.Context, ref string, at *time.Time) error {
	// Explicit null clears the field, so the patch body always carries the key.
	body := map[string]any{"next_maintenance_date": at}

	return s.client.patch(ctx, vehiclesPath+"/"+url.PathEscape(ref), body, nil)
}
