package usecase

import (
	"context"
	"time"

	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/service"
)

// ReminderInput carries the caller-editable fields of a reminder. The same
// shape serves create and full-replace update.
type ReminderInput struct {
	Title             string                   `json:"title"`
	Description       string                   `json:"description"`
	ScheduleKind      entity.ScheduleKind      `json:"scheduleKind"`
	ScheduledAt       time.Time                `json:"scheduledAt"`
	RecurrencePattern entity.RecurrencePattern `json:"recurrencePattern"`
	RecurrenceEndDate *time.Time               `json:"recurrenceEndDate"`

	// AssignedUserIDs is the caller's explicit recipient selection. For fleet
	// reminders the final recipient set also includes the vehicle's
	// responsible users and drivers.
	AssignedUserIDs []int64 `json:"assignedUserIds"`

	Module          string `json:"module"`
	RelatedEntityID string `json:"relatedEntityId"`
}

// ReminderUsecase defines the reminder resolution and mutation engine. All
// mutating operations accept a numeric or opaque reference and operate on the
// canonical record, redirecting occurrence references to their parent.
type ReminderUsecase interface {
	// Resolve finds the reminder a caller-supplied reference points at,
	// without applying occurrence redirection.
	Resolve(ctx context.Context, reference string) (*entity.Reminder, error)

	// List returns the reminders attached to a vehicle.
	List(ctx context.Context, vehicleRef string) ([]*entity.Reminder, error)

	// Create validates, aggregates recipients, persists and announces a new
	// reminder authored by the caller.
	Create(ctx context.Context, caller *service.CallerProfile, input ReminderInput) (*entity.Reminder, error)

	// Update performs a full replace of the reminder's editable fields.
	Update(ctx context.Context, reference string, input ReminderInput) (*entity.Reminder, error)

	// Delete removes the reminder and returns the identifier the deletion
	// event was announced under.
	Delete(ctx context.Context, reference string) (string, error)

	// ToggleActive flips the reminder's active flag.
	ToggleActive(ctx context.Context, reference string) (*entity.Reminder, error)

	// ToggleCompleted flips the reminder's completed flag.
	ToggleCompleted(ctx context.Context, reference string) (*entity.Reminder, error)
}
