package repository

import (
	"context"
	"time"

	"fleetdesk/internal/domain/entity"
)

// VehicleRepository gives the engine read access to a vehicle's assignments
// and write access limited to the denormalized next maintenance date.
type VehicleRepository interface {
	// FindByReference resolves a vehicle by numeric or opaque identifier.
	FindByReference(ctx context.Context, ref string) (*entity.Vehicle, error)

	// SetNextMaintenanceDate updates the vehicle's denormalized maintenance
	// date. A nil value clears it.
	SetNextMaintenanceDate(ctx context.Context, ref string, at *time.Time) error
}
