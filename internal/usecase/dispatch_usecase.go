package usecase

import (
	"context"
	"time"

	"fleetdesk/internal/domain/service"
)

// DispatchUsecase fans reminder notifications out to their recipients over
// email and per-vehicle push topics.
type DispatchUsecase interface {
	// HandleEvent reacts to a reminder change event delivered through the
	// push subscription.
	HandleEvent(ctx context.Context, event service.ReminderEvent) error

	// DispatchDue notifies the recipients of every reminder due before now
	// and advances the next trigger of recurring ones. It returns the number
	// of reminders dispatched.
	DispatchDue(ctx context.Context, now time.Time) (int, error)
}
