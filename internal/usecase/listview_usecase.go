package usecase

import (
	"context"

	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/service"
)

// EditForm is a reminder reshaped for an edit form: assigned users are
// reduced to numeric identifiers, with unresolvable directory entries
// dropped.
type EditForm struct {
	Reminder        entity.Reminder `json:"reminder"`
	AssignedUserIDs []int64         `json:"assignedUserIds"`
}

// ListViewUsecase opens per-vehicle reminder list views.
type ListViewUsecase interface {
	OpenView(ctx context.Context, vehicleRef string) (ListView, error)
}

// ListView is a mounted, self-synchronizing reminder list for one vehicle.
// It holds a local copy of the list, applies optimistic mutations, announces
// changes on the event bus and reconciles with the server after a settling
// delay. At most one mutation may be in flight per view.
type ListView interface {
	// ID identifies the view for event attribution.
	ID() string

	// VehicleRef is the vehicle whose reminders the view holds.
	VehicleRef() string

	// Reminders returns the current local list snapshot.
	Reminders() []*entity.Reminder

	// Refresh reloads the list from the server.
	Refresh(ctx context.Context) error

	Create(ctx context.Context, caller *service.CallerProfile, input ReminderInput) (*entity.Reminder, error)
	Update(ctx context.Context, reference string, input ReminderInput) (*entity.Reminder, error)
	Delete(ctx context.Context, reference string) error
	ToggleActive(ctx context.Context, reference string) (*entity.Reminder, error)
	ToggleCompleted(ctx context.Context, reference string) (*entity.Reminder, error)

	// PrepareEdit loads a reminder and reconciles its assigned users against
	// the user directory.
	PrepareEdit(ctx context.Context, reference string) (*EditForm, error)

	// Close unsubscribes the view from the event bus and stops pending
	// reconciliations.
	Close()
}
