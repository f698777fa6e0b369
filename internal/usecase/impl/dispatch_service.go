package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fleetdesk/config"
	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/repository"
	"fleetdesk/internal/domain/service"
	"fleetdesk/internal/recurrence"
	"fleetdesk/internal/usecase"
)

type dispatchService struct {
	reminders repository.ReminderRepository
	push      service.PushService
	mail      service.MailService
	logger    *slog.Logger
	now       func() time.Time
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
// Push and mail are optional; a missing channel is skipped, not an error.
type DispatchServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	Push         service.PushService `optional:"true"`
	Mail         service.MailService `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDispatchService creates the notification fan-out service.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		reminders: params.ReminderRepo,
		push:      params.Push,
		mail:      params.Mail,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// HandleEvent notifies recipients about newly created or updated reminders.
// Toggle and delete events carry no notification obligation.
func (s *dispatchService) HandleEvent(ctx context.Context, event service.ReminderEvent) error {
	switch event.Kind {
	case service.EventCreated, service.EventUpdated:
	default:
		return nil
	}

	if event.Reminder == nil {
		return errors.Errorf("%s event without reminder payload", event.Kind)
	}

	s.notify(ctx, event.Reminder)

	return nil
}

// DispatchDue notifies recipients of every active, uncompleted reminder due
// before now and advances the next trigger of recurring ones.
func (s *dispatchService) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.reminders.ListDue(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list due reminders")
	}

	dispatched := 0
	for _, reminder := range due {
		if !reminder.IsActive || reminder.IsCompleted {
			continue
		}

		s.notify(ctx, reminder)
		dispatched++

		if err := s.advanceTrigger(ctx, reminder, now); err != nil {
			s.logger.ErrorContext(ctx, "failed to advance reminder trigger",
				slog.Int64("reminder_id", reminder.InternalID),
				slog.Any("error", err),
			)
		}
	}

	return dispatched, nil
}

// advanceTrigger moves a recurring reminder past the occurrence that was just
// dispatched. A pattern exhausted by its end date leaves the trigger unset so
// the reminder stops surfacing as due.
func (s *dispatchService) advanceTrigger(ctx context.Context, reminder *entity.Reminder, now time.Time) error {
	if reminder.ScheduleKind != entity.ScheduleRecurring {
		return nil
	}

	// Strictly after: an occurrence landing exactly on the sweep instant has
	// just been dispatched and must not be selected again.
	next, err := recurrence.NextAfter(reminder.RecurrencePattern, reminder.ScheduledAt, reminder.RecurrenceEndDate, now, false)
	if err != nil {
		return errors.Wrap(err, "failed to compute next trigger")
	}

	updated := *reminder
	updated.NextTrigger = next

	if _, err := s.reminders.Update(ctx, reminder.InternalID, &updated); err != nil {
		return errors.Wrap(err, "failed to store advanced trigger")
	}

	return nil
}

// notify fans one reminder out over every configured channel. Per-recipient
// failures are logged and do not stop the rest of the fan-out.
func (s *dispatchService) notify(ctx context.Context, reminder *entity.Reminder) {
	if s.mail != nil {
		for _, user := range reminder.AssignedUsers {
			if user.Email == "" {
				continue
			}

			if err := s.mail.SendReminderMail(ctx, user.Email, user.DisplayName, reminder.Title, reminder.Description); err != nil {
				s.logger.WarnContext(ctx, "failed to send reminder mail",
					slog.String("to", user.Email),
					slog.Int64("reminder_id", reminder.InternalID),
					slog.Any("error", err),
				)
			}
		}
	}

	if s.push != nil && reminder.RelatedEntityID != "" {
		data := map[string]string{
			"reminder": reminder.PreferredIdentifier(),
			"vehicle":  reminder.RelatedEntityID,
		}

		topic := vehicleTopic(reminder.RelatedEntityID)
		if err := s.push.SendToTopic(ctx, topic, reminder.Title, reminder.Description, data); err != nil {
			s.logger.WarnContext(ctx, "failed to push reminder notification",
				slog.String("topic", topic),
				slog.Int64("reminder_id", reminder.InternalID),
				slog.Any("error", err),
			)
		}
	}
}

func vehicleTopic(vehicleRef string) string {
	return fmt.Sprintf("vehicle-%s", vehicleRef)
}
