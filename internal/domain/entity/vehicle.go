package entity

import "time"

// Vehicle is the fleet entity a reminder can be attached to. Only the fields
// the reminder engine depends on are modelled; the rest of the vehicle record
// stays with the content store.
type Vehicle struct {
	InternalID int64  `json:"internal_id"`
	ExternalID string `json:"external_id"`
	Label      string `json:"label"`

	// ResponsibleUsers are the users accountable for the vehicle
	// ("responsables" on the wire).
	ResponsibleUsers []UserRef `json:"responsible_users"`
	// AssignedDrivers are the users operating the vehicle.
	AssignedDrivers []UserRef `json:"assigned_drivers"`

	// NextMaintenanceDate is a denormalized mirror of the active maintenance
	// reminder's next trigger. It is a convenience projection, not a source
	// of truth.
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`
}
