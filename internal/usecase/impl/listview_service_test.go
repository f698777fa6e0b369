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
	"fleetdesk/internal/infra/bus"
	mockRepo "fleetdesk/internal/mocks/repository"
	mockUsecase "fleetdesk/internal/mocks/usecase"
	"fleetdesk/internal/usecase"
)

func newTestListViewService(
	reminders usecase.ReminderUsecase,
	users *mockRepo.MockUserRepository,
	eventBus service.EventBus,
) usecase.ListViewUsecase {
	cfg := &config.Config{}
	cfg.Sync.SettleDelay = 5 * time.Millisecond

	return NewListViewService(ListViewServiceParams{
		Reminders: reminders,
		UserRepo:  users,
		Bus:       eventBus,
		Config:    cfg,
		Logger:    slog.Default(),
	})
}

func TestListView_OpenLoadsInitialList(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)

	items := []*entity.Reminder{
		{InternalID: 1, ExternalID: "rem_1"},
		{InternalID: 2, ExternalID: "rem_2"},
	}
	reminders.EXPECT().List(mock.Anything, "veh_1").Return(items, nil)

	svc := newTestListViewService(reminders, users, bus.New(slog.Default()))

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	assert.Len(t, view.Reminders(), 2)
	assert.Equal(t, "veh_1", view.VehicleRef())
}

func TestListView_RejectsConcurrentSubmission(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)

	reminders.EXPECT().List(mock.Anything, "veh_1").Return(nil, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	reminders.EXPECT().Delete(mock.Anything, "rem_1").
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return("rem_1", nil).
		Once()

	svc := newTestListViewService(reminders, users, bus.New(slog.Default()))

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	done := make(chan error, 1)
	go func() {
		done <- view.Delete(context.Background(), "rem_1")
	}()

	<-entered

	// A second mutation while the first is in flight is refused outright.
	err = view.Delete(context.Background(), "rem_1")
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestListView_DeleteAppliesOptimisticRemoval(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)

	items := []*entity.Reminder{
		{InternalID: 1, ExternalID: "rem_1"},
		{InternalID: 2, ExternalID: "rem_2"},
	}
	reminders.EXPECT().List(mock.Anything, "veh_1").
		Return(items, nil).Once()
	reminders.EXPECT().List(mock.Anything, "veh_1").
		Return([]*entity.Reminder{{InternalID: 2, ExternalID: "rem_2"}}, nil).Maybe()
	reminders.EXPECT().Delete(mock.Anything, "rem_1").Return("rem_1", nil)

	svc := newTestListViewService(reminders, users, bus.New(slog.Default()))

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	require.NoError(t, view.Delete(context.Background(), "rem_1"))

	// Removal is visible immediately, before the reconciling reload runs.
	kept := view.Reminders()
	require.Len(t, kept, 1)
	assert.Equal(t, "rem_2", kept[0].ExternalID)
}

func TestListView_FailedDeleteLeavesListUntouched(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)

	items := []*entity.Reminder{
		{InternalID: 1, ExternalID: "rem_1"},
		{InternalID: 2, ExternalID: "rem_2"},
	}
	reminders.EXPECT().List(mock.Anything, "veh_1").Return(items, nil).Once()
	reminders.EXPECT().Delete(mock.Anything, "rem_1").
		Return("", domainerrors.ErrBackendUnreachable)

	svc := newTestListViewService(reminders, users, bus.New(slog.Default()))

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	err = view.Delete(context.Background(), "rem_1")
	require.Error(t, err)

	assert.Len(t, view.Reminders(), 2)
}

func TestListView_ToggleCompletedNotFoundDoesNotReload(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)

	items := []*entity.Reminder{{InternalID: 1, ExternalID: "rem_1"}}

	// Exactly one load: the initial one. A reload after the failed toggle
	// would trip the mock.
	reminders.EXPECT().List(mock.Anything, "veh_1").Return(items, nil).Once()
	reminders.EXPECT().ToggleCompleted(mock.Anything, "rem_gone").
		Return(nil, domainerrors.ErrReminderNotFound)

	svc := newTestListViewService(reminders, users, bus.New(slog.Default()))

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	_, err = view.ToggleCompleted(context.Background(), "rem_gone")
	assert.ErrorIs(t, err, domainerrors.ErrReminderNotFound)

	time.Sleep(30 * time.Millisecond)
	assert.Len(t, view.Reminders(), 1)
}

func TestListView_ForeignEventTriggersReload(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)
	eventBus := bus.New(slog.Default())

	reloaded := make(chan struct{}, 1)
	reminders.EXPECT().List(mock.Anything, "veh_1").Return(nil, nil).Once()
	reminders.EXPECT().List(mock.Anything, "veh_1").
		Run(func(mock.Arguments) {
			select {
			case reloaded <- struct{}{}:
			default:
			}
		}).
		Return(nil, nil)

	svc := newTestListViewService(reminders, users, eventBus)

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	eventBus.Publish(context.Background(), &service.ReminderEvent{
		Kind:       service.EventUpdated,
		Origin:     "some-other-view",
		VehicleRef: "veh_1",
	})

	select {
	case <-reloaded:
	case <-time.After(time.Second):
		t.Fatal("expected a reload after a foreign update event")
	}
}

func TestListView_DeletedEventDoesNotTriggerReload(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)
	eventBus := bus.New(slog.Default())

	reminders.EXPECT().List(mock.Anything, "veh_1").Return(nil, nil).Once()

	svc := newTestListViewService(reminders, users, eventBus)

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	eventBus.Publish(context.Background(), &service.ReminderEvent{
		Kind:       service.EventDeleted,
		Origin:     "some-other-view",
		Identifier: "rem_1",
		VehicleRef: "veh_1",
	})

	// The deleting view reloads authoritatively; this one must stay quiet.
	time.Sleep(30 * time.Millisecond)
}

func TestListView_OwnEventDoesNotTriggerReload(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)
	eventBus := bus.New(slog.Default())

	reminders.EXPECT().List(mock.Anything, "veh_1").Return(nil, nil).Once()

	svc := newTestListViewService(reminders, users, eventBus)

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	eventBus.Publish(context.Background(), &service.ReminderEvent{
		Kind:       service.EventUpdated,
		Origin:     view.ID(),
		VehicleRef: "veh_1",
	})

	time.Sleep(30 * time.Millisecond)
}

func TestListView_PrepareEditReconcilesUserIDs(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	users := mockRepo.NewMockUserRepository(t)

	reminders.EXPECT().List(mock.Anything, "veh_1").Return(nil, nil)

	record := &entity.Reminder{
		InternalID: 3,
		ExternalID: "rem_3",
		Title:      "Inspection",
		AssignedUsers: []entity.UserRef{
			{ID: 5},
			{ExternalID: "usr_9"},
			{ExternalID: "usr_ghost"},
		},
	}
	reminders.EXPECT().Resolve(mock.Anything, "rem_3").Return(record, nil)
	users.EXPECT().ListDirectory(mock.Anything).
		Return([]entity.UserRef{{ID: 9, ExternalID: "usr_9", DisplayName: "Nine"}}, nil)

	svc := newTestListViewService(reminders, users, bus.New(slog.Default()))

	view, err := svc.OpenView(context.Background(), "veh_1")
	require.NoError(t, err)
	defer view.Close()

	form, err := view.PrepareEdit(context.Background(), "rem_3")
	require.NoError(t, err)

	// Entries with a numeric id pass through, opaque ones are reconciled
	// against the directory, unresolvable ones are dropped.
	assert.Equal(t, []int64{5, 9}, form.AssignedUserIDs)
	assert.Equal(t, "rem_3", form.Reminder.ExternalID)
}
