package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"fleetdesk/config"
	"fleetdesk/internal/domain/entity"
	domainerrors "fleetdesk/internal/domain/errors"
	"fleetdesk/internal/domain/repository"
	"fleetdesk/internal/domain/service"
	"fleetdesk/internal/usecase"
)

type listViewService struct {
	reminders usecase.ReminderUsecase
	users     repository.UserRepository
	bus       service.EventBus
	settle    time.Duration
	logger    *slog.Logger
}

// ListViewServiceParams holds dependencies for ListViewService, injected by Fx.
type ListViewServiceParams struct {
	fx.In

	Reminders usecase.ReminderUsecase
	UserRepo  repository.UserRepository
	Bus       service.EventBus
	Config    *config.Config
	Logger    *slog.Logger
}

// NewListViewService creates the factory for per-vehicle reminder list views.
func NewListViewService(params ListViewServiceParams) usecase.ListViewUsecase {
	return &listViewService{
		reminders: params.Reminders,
		users:     params.UserRepo,
		bus:       params.Bus,
		settle:    params.Config.Sync.SettleDelay,
		logger:    params.Logger,
	}
}

// OpenView loads the vehicle's reminders and subscribes the view to the
// event bus so it follows mutations performed elsewhere.
func (s *listViewService) OpenView(ctx context.Context, vehicleRef string) (usecase.ListView, error) {
	if vehicleRef == "" {
		return nil, domainerrors.ErrValidation.WithDetails("vehicle reference is required")
	}

	view := &listView{
		id:         uuid.NewString(),
		vehicleRef: vehicleRef,
		reminders:  s.reminders,
		users:      s.users,
		settle:     s.settle,
		logger:     s.logger,
		closed:     make(chan struct{}),
	}

	if err := view.Refresh(ctx); err != nil {
		return nil, err
	}

	events, unsubscribe := s.bus.Subscribe(view.id)
	view.unsubscribe = unsubscribe
	go view.follow(events)

	return view, nil
}

// listView keeps a local, per-view copy of one vehicle's reminders. The copy
// is advisory: the remote store stays the source of truth, and the view
// converges on it through reloads and reconciliation reads.
type listView struct {
	id         string
	vehicleRef string

	reminders usecase.ReminderUsecase
	users     repository.UserRepository
	settle    time.Duration
	logger    *slog.Logger

	// inFlight admits at most one mutation at a time. A plain bool behind
	// the mutex would leave a window between the handler's entry and the
	// flag write; the swap closes it.
	inFlight atomic.Bool

	mu    sync.RWMutex
	items []*entity.Reminder

	unsubscribe func()
	closed      chan struct{}
	closeOnce   sync.Once
}

func (v *listView) ID() string { return v.id }

func (v *listView) VehicleRef() string { return v.vehicleRef }

func (v *listView) Reminders() []*entity.Reminder {
	v.mu.RLock()
	defer v.mu.RUnlock()

	items := make([]*entity.Reminder, len(v.items))
	copy(items, v.items)

	return items
}

func (v *listView) Refresh(ctx context.Context) error {
	items, err := v.reminders.List(ctx, v.vehicleRef)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.items = items
	v.mu.Unlock()

	return nil
}

// acquire admits the mutation or reports one already in flight.
func (v *listView) acquire() error {
	if !v.inFlight.CompareAndSwap(false, true) {
		return domainerrors.ErrSubmissionInFlight
	}

	return nil
}

func (v *listView) release() {
	v.inFlight.Store(false)
}

func (v *listView) Create(ctx context.Context, caller *service.CallerProfile, input usecase.ReminderInput) (*entity.Reminder, error) {
	if err := v.acquire(); err != nil {
		return nil, err
	}
	defer v.release()

	ctx = service.WithOrigin(ctx, v.id)

	created, err := v.reminders.Create(ctx, caller, input)
	if err != nil {
		return nil, err
	}

	if err := v.Refresh(ctx); err != nil {
		v.logger.WarnContext(ctx, "list reload after create failed", slog.Any("error", err))
	}
	v.scheduleReconcile()

	return created, nil
}

func (v *listView) Update(ctx context.Context, reference string, input usecase.ReminderInput) (*entity.Reminder, error) {
	if err := v.acquire(); err != nil {
		return nil, err
	}
	defer v.release()

	ctx = service.WithOrigin(ctx, v.id)

	updated, err := v.reminders.Update(ctx, reference, input)
	if err != nil {
		return nil, err
	}

	if err := v.Refresh(ctx); err != nil {
		v.logger.WarnContext(ctx, "list reload after update failed", slog.Any("error", err))
	}
	v.scheduleReconcile()

	return updated, nil
}

// Delete removes the reminder remotely, then applies an optimistic local
// removal. The local filter matches either identifier kind because callers
// may hold the record under the numeric or the opaque id. A failed delete
// leaves the local list untouched.
func (v *listView) Delete(ctx context.Context, reference string) error {
	if err := v.acquire(); err != nil {
		return err
	}
	defer v.release()

	ctx = service.WithOrigin(ctx, v.id)

	identifier, err := v.reminders.Delete(ctx, reference)
	if err != nil {
		return err
	}

	v.mu.Lock()
	kept := v.items[:0]
	for _, item := range v.items {
		if item.MatchesIdentifier(identifier) || item.MatchesIdentifier(reference) {
			continue
		}
		kept = append(kept, item)
	}
	v.items = kept
	v.mu.Unlock()

	v.scheduleReconcile()

	return nil
}

func (v *listView) ToggleActive(ctx context.Context, reference string) (*entity.Reminder, error) {
	if err := v.acquire(); err != nil {
		return nil, err
	}
	defer v.release()

	ctx = service.WithOrigin(ctx, v.id)

	updated, err := v.reminders.ToggleActive(ctx, reference)
	if err != nil {
		return nil, err
	}

	v.replaceLocal(updated)
	v.scheduleReconcile()

	return updated, nil
}

// ToggleCompleted flips the completed flag. A not-found outcome is surfaced
// without reloading the list: a transient resolution miss must not evict
// still-valid records from the visible list.
func (v *listView) ToggleCompleted(ctx context.Context, reference string) (*entity.Reminder, error) {
	if err := v.acquire(); err != nil {
		return nil, err
	}
	defer v.release()

	ctx = service.WithOrigin(ctx, v.id)

	updated, err := v.reminders.ToggleCompleted(ctx, reference)
	if err != nil {
		// Not-found included: no failure path schedules a reload, so a
		// transient miss cannot evict anything. The caller refreshes
		// manually if needed.
		return nil, err
	}

	v.replaceLocal(updated)
	v.scheduleReconcile()

	return updated, nil
}

// PrepareEdit reshapes a reminder for an edit form. Assigned users carrying
// only an opaque identifier are reconciled against the user directory;
// unresolvable entries are dropped rather than failing the form.
func (v *listView) PrepareEdit(ctx context.Context, reference string) (*usecase.EditForm, error) {
	record, err := v.reminders.Resolve(ctx, reference)
	if err != nil {
		return nil, err
	}

	var directory []entity.UserRef
	needsDirectory := false
	for _, u := range record.AssignedUsers {
		if u.ID == 0 && u.ExternalID != "" {
			needsDirectory = true
			break
		}
	}
	if needsDirectory {
		directory, err = v.users.ListDirectory(ctx)
		if err != nil {
			v.logger.WarnContext(ctx, "user directory unavailable for edit form", slog.Any("error", err))
		}
	}

	byExternal := make(map[string]int64, len(directory))
	for _, u := range directory {
		byExternal[u.ExternalID] = u.ID
	}

	ids := make([]int64, 0, len(record.AssignedUsers))
	for _, u := range record.AssignedUsers {
		switch {
		case u.ID != 0:
			ids = append(ids, u.ID)
		case u.ExternalID != "":
			if id, ok := byExternal[u.ExternalID]; ok {
				ids = append(ids, id)
				continue
			}
			v.logger.WarnContext(ctx, "dropping unresolvable assigned user from edit form",
				slog.String("external_id", u.ExternalID),
			)
		}
	}

	return &usecase.EditForm{
		Reminder:        *record,
		AssignedUserIDs: ids,
	}, nil
}

func (v *listView) Close() {
	v.closeOnce.Do(func() {
		close(v.closed)
		if v.unsubscribe != nil {
			v.unsubscribe()
		}
	})
}

func (v *listView) replaceLocal(updated *entity.Reminder) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, item := range v.items {
		if item.InternalID == updated.InternalID {
			v.items[i] = updated

			return
		}
	}
}

// scheduleReconcile reloads the list after the settling delay, absorbing the
// backend's read-after-write lag on whatever index the reload relies on.
func (v *listView) scheduleReconcile() {
	go func() {
		timer := time.NewTimer(v.settle)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-v.closed:
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := v.Refresh(ctx); err != nil {
			v.logger.Warn("reconciling reload failed", slog.Any("error", err))
		}
	}()
}

// follow applies bus events from other views. The deleting view already
// reloads authoritatively, so deleted events do not fan out into reloads.
func (v *listView) follow(events <-chan *service.ReminderEvent) {
	for {
		select {
		case <-v.closed:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Origin == v.id {
				continue
			}
			if !event.TriggersReload() {
				continue
			}
			if event.VehicleRef != "" && event.VehicleRef != v.vehicleRef {
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := v.Refresh(ctx); err != nil {
				v.logger.Warn("event-driven reload failed",
					slog.String("kind", string(event.Kind)),
					slog.Any("error", err),
				)
			}
			cancel()
		}
	}
}
