package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetdesk/config"
	"fleetdesk/internal/domain/entity"
	domainerrors "fleetdesk/internal/domain/errors"
	"fleetdesk/internal/domain/service"
	mockRepo "fleetdesk/internal/mocks/repository"
	mockSvc "fleetdesk/internal/mocks/service"
	"fleetdesk/internal/usecase"
)

func newTestDispatchService(
	reminders *mockRepo.MockReminderRepository,
	push *mockSvc.MockPushService,
	mail *mockSvc.MockMailService,
) usecase.DispatchUsecase {
	return NewDispatchService(DispatchServiceParams{
		ReminderRepo: reminders,
		Push:         push,
		Mail:         mail,
		Config:       &config.Config{},
		Logger:       slog.Default(),
	})
}

func TestDispatchService_HandleEvent_NotifiesRecipients(t *testing.T) {
	reminders := mockRepo.NewMockReminderRepository(t)
	push := mockSvc.NewMockPushService(t)
	mail := mockSvc.NewMockMailService(t)

	reminder := &entity.Reminder{
		InternalID:      5,
		ExternalID:      "rem_5",
		Title:           "Maintenance moteur",
		Description:     "Vidange et filtres",
		RelatedEntityID: "veh_1",
		AssignedUsers: []entity.UserRef{
			{ID: 101, DisplayName: "U1", Email: "u1@example.com"},
			{ID: 102, DisplayName: "U2"}, // no email, mail skipped
		},
	}

	mail.EXPECT().SendReminderMail(mock.Anything, "u1@example.com", "U1", "Maintenance moteur", "Vidange et filtres").
		Return(nil)
	push.EXPECT().SendToTopic(mock.Anything, "vehicle-veh_1", "Maintenance moteur", "Vidange et filtres",
		map[string]string{"reminder": "rem_5", "vehicle": "veh_1"}).
		Return(nil)

	svc := newTestDispatchService(reminders, push, mail)

	err := svc.HandleEvent(context.Background(), service.ReminderEvent{
		Kind:     service.EventCreated,
		Reminder: reminder,
	})
	require.NoError(t, err)
}

func TestDispatchService_HandleEvent_IgnoresToggleAndDelete(t *testing.T) {
	reminders := mockRepo.NewMockReminderRepository(t)
	push := mockSvc.NewMockPushService(t)
	mail := mockSvc.NewMockMailService(t)

	svc := newTestDispatchService(reminders, push, mail)

	for _, kind := range []service.ReminderEventKind{
		service.EventDeleted,
		service.EventToggledActive,
		service.EventToggledComplete,
	} {
		err := svc.HandleEvent(context.Background(), service.ReminderEvent{Kind: kind, Identifier: "rem_5"})
		require.NoError(t, err)
	}
}

func TestDispatchService_DispatchDue_SkipsInactiveAndCompleted(t *testing.T) {
	reminders := mockRepo.NewMockReminderRepository(t)
	push := mockSvc.NewMockPushService(t)
	mail := mockSvc.NewMockMailService(t)

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	due := []*entity.Reminder{
		{
			InternalID:      1,
			Title:           "Inspection",
			IsActive:        true,
			ScheduleKind:    entity.ScheduleUnique,
			RelatedEntityID: "veh_1",
			AssignedUsers:   []entity.UserRef{{ID: 101, DisplayName: "U1", Email: "u1@example.com"}},
		},
		{InternalID: 2, Title: "Inactive", IsActive: false},
		{InternalID: 3, Title: "Done", IsActive: true, IsCompleted: true},
	}

	reminders.EXPECT().ListDue(mock.Anything, now).Return(due, nil)
	mail.EXPECT().SendReminderMail(mock.Anything, "u1@example.com", "U1", "Inspection", "").Return(nil)
	push.EXPECT().SendToTopic(mock.Anything, "vehicle-veh_1", "Inspection", "",
		map[string]string{"reminder": "1", "vehicle": "veh_1"}).
		Return(nil)

	svc := newTestDispatchService(reminders, push, mail)

	count, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchService_DispatchDue_AdvancesRecurringTrigger(t *testing.T) {
	reminders := mockRepo.NewMockReminderRepository(t)
	push := mockSvc.NewMockPushService(t)
	mail := mockSvc.NewMockMailService(t)

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	trigger := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	recurring := &entity.Reminder{
		InternalID:        4,
		ExternalID:        "rem_4",
		Title:             "Entretien",
		IsActive:          true,
		ScheduleKind:      entity.ScheduleRecurring,
		RecurrencePattern: entity.RecurMonthly,
		ScheduledAt:       time.Date(2026, 1, 1, 7, 0, 0, 0, time.UTC),
		NextTrigger:       &trigger,
		RelatedEntityID:   "veh_2",
		AssignedUsers:     []entity.UserRef{{ID: 101, DisplayName: "U1", Email: "u1@example.com"}},
	}

	reminders.EXPECT().ListDue(mock.Anything, now).Return([]*entity.Reminder{recurring}, nil)
	mail.EXPECT().SendReminderMail(mock.Anything, "u1@example.com", "U1", "Entretien", "").Return(nil)
	push.EXPECT().SendToTopic(mock.Anything, "vehicle-veh_2", "Entretien", "", mock.Anything).Return(nil)

	reminders.EXPECT().Update(mock.Anything, int64(4),
		mock.MatchedBy(func(r *entity.Reminder) bool {
			return r.NextTrigger != nil && r.NextTrigger.After(now)
		})).
		Return(recurring, nil)

	svc := newTestDispatchService(reminders, push, mail)

	count, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchService_DispatchDue_MailFailureDoesNotStopFanOut(t *testing.T) {
	reminders := mockRepo.NewMockReminderRepository(t)
	push := mockSvc.NewMockPushService(t)
	mail := mockSvc.NewMockMailService(t)

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	due := []*entity.Reminder{{
		InternalID:      1,
		Title:           "Inspection",
		IsActive:        true,
		ScheduleKind:    entity.ScheduleUnique,
		RelatedEntityID: "veh_1",
		AssignedUsers: []entity.UserRef{
			{ID: 101, DisplayName: "U1", Email: "u1@example.com"},
			{ID: 102, DisplayName: "U2", Email: "u2@example.com"},
		},
	}}

	reminders.EXPECT().ListDue(mock.Anything, now).Return(due, nil)
	mail.EXPECT().SendReminderMail(mock.Anything, "u1@example.com", "U1", "Inspection", "").
		Return(domainerrors.ErrBackendUnreachable)
	mail.EXPECT().SendReminderMail(mock.Anything, "u2@example.com", "U2", "Inspection", "").
		Return(nil)
	push.EXPECT().SendToTopic(mock.Anything, "vehicle-veh_1", "Inspection", "", mock.Anything).Return(nil)

	svc := newTestDispatchService(reminders, push, mail)

	count, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchService_DispatchDue_SweepOnOccurrenceInstantAdvancesPastIt(t *testing.T) {
	reminders := mockRepo.NewMockReminderRepository(t)
	push := mockSvc.NewMockPushService(t)
	mail := mockSvc.NewMockMailService(t)

	// The sweep lands exactly on a monthly occurrence; the stored trigger
	// must step to the following occurrence, not stall on the dispatched one.
	now := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	recurring := &entity.Reminder{
		InternalID:        6,
		ExternalID:        "rem_6",
		Title:             "Entretien",
		IsActive:          true,
		ScheduleKind:      entity.ScheduleRecurring,
		RecurrencePattern: entity.RecurMonthly,
		ScheduledAt:       time.Date(2026, 1, 1, 7, 0, 0, 0, time.UTC),
		NextTrigger:       &now,
		RelatedEntityID:   "veh_2",
		AssignedUsers:     []entity.UserRef{{ID: 101, DisplayName: "U1", Email: "u1@example.com"}},
	}

	reminders.EXPECT().ListDue(mock.Anything, now).Return([]*entity.Reminder{recurring}, nil)
	mail.EXPECT().SendReminderMail(mock.Anything, "u1@example.com", "U1", "Entretien", "").Return(nil)
	push.EXPECT().SendToTopic(mock.Anything, "vehicle-veh_2", "Entretien", "", mock.Anything).Return(nil)

	reminders.EXPECT().Update(mock.Anything, int64(6),
		mock.MatchedBy(func(r *entity.Reminder) bool {
			return r.NextTrigger != nil &&
				r.NextTrigger.Equal(time.Date(2026, 10, 1, 7, 0, 0, 0, time.UTC))
		})).
		Return(recurring, nil)

	svc := newTestDispatchService(reminders, push, mail)

	count, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
