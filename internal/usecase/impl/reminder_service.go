package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fleetdesk/config"
	"fleetdesk/internal/domain/constants"
	"fleetdesk/internal/domain/entity"
	domainerrors "fleetdesk/internal/domain/errors"
	"fleetdesk/internal/domain/repository"
	"fleetdesk/internal/domain/service"
	"fleetdesk/internal/recurrence"
	"fleetdesk/internal/usecase"
)

// numericRef matches references that address a record by its numeric store
// identifier.
var numericRef = regexp.MustCompile(`^[0-9]+$`)

type reminderService struct {
	reminders repository.ReminderRepository
	vehicles  repository.VehicleRepository
	users     repository.UserRepository
	bus       service.EventBus
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	VehicleRepo  repository.VehicleRepository
	UserRepo     repository.UserRepository
	Bus          service.EventBus
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService creates the reminder resolution and mutation engine.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminders: params.ReminderRepo,
		vehicles:  params.VehicleRepo,
		users:     params.UserRepo,
		bus:       params.Bus,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// Resolve finds the record a reference points at, trying progressively more
// expensive strategies. Numeric references always take the point-lookup path
// and are still verified for existence; the id space may have been pruned.
func (s *reminderService) Resolve(ctx context.Context, reference string) (*entity.Reminder, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, domainerrors.ErrReminderNotFound.WithDetails("empty reference")
	}

	if numericRef.MatchString(reference) {
		id, err := strconv.ParseInt(reference, 10, 64)
		if err != nil {
			return nil, domainerrors.ErrReminderNotFound.WithDetails(reference)
		}

		reminder, err := s.reminders.FindByInternalID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return nil, domainerrors.ErrReminderNotFound.WithDetails(reference)
			}

			return nil, errors.Wrap(err, "failed to look up reminder by internal id")
		}

		return reminder, nil
	}

	return s.resolveExternal(ctx, reference)
}

// resolveExternal resolves an opaque reference: direct point lookup first,
// then an equality-filtered query, then a bounded paginated scan. Some
// deployments do not expose the external id as a filterable field, so the
// scan trades latency for correctness. Failures other than not-found and
// unsupported-query abort resolution instead of falling through.
func (s *reminderService) resolveExternal(ctx context.Context, reference string) (*entity.Reminder, error) {
	reminder, err := s.reminders.FindByExternalID(ctx, reference)
	if err == nil {
		return reminder, nil
	}
	if !resolutionMiss(err) {
		return nil, errors.Wrap(err, "failed to look up reminder by external id")
	}

	reminder, err = s.reminders.QueryByExternalID(ctx, reference)
	if err == nil {
		return reminder, nil
	}
	if !resolutionMiss(err) {
		return nil, errors.Wrap(err, "failed to query reminder by external id")
	}

	return s.scanForExternalID(ctx, reference)
}

func (s *reminderService) scanForExternalID(ctx context.Context, reference string) (*entity.Reminder, error) {
	pageSize := s.config.Store.ResolverPageSize
	maxPages := s.config.Store.ResolverMaxPages

	for page := 1; page <= maxPages; page++ {
		records, err := s.reminders.ListPage(ctx, page, pageSize)
		if err != nil {
			return nil, errors.Wrapf(err, "resolver scan failed on page %d", page)
		}
		if len(records) == 0 {
			break
		}

		for _, record := range records {
			if record.ExternalID == reference {
				return record, nil
			}
		}

		if len(records) < pageSize {
			break
		}
	}

	return nil, domainerrors.ErrReminderNotFound.WithDetails(reference)
}

// redirectTarget applies the occurrence-to-parent redirection. A generated
// occurrence is never mutated directly; when its parent cannot be located the
// occurrence is treated as a degenerate standalone reminder rather than
// failing the whole operation.
func (s *reminderService) redirectTarget(ctx context.Context, record *entity.Reminder) *entity.Reminder {
	if !record.IsOccurrence() {
		return record
	}

	parentID := *record.ParentReminderID

	parent, err := s.reminders.FindByInternalID(ctx, parentID)
	if err == nil {
		return parent
	}

	parent, err = s.reminders.QueryByEitherID(ctx, strconv.FormatInt(parentID, 10))
	if err == nil {
		return parent
	}

	s.logger.WarnContext(ctx, "occurrence parent unresolvable, treating occurrence as standalone reminder",
		slog.Int64("occurrence_id", record.InternalID),
		slog.Int64("parent_id", parentID),
		slog.Any("error", err),
	)

	return record
}

func (s *reminderService) List(ctx context.Context, vehicleRef string) ([]*entity.Reminder, error) {
	if vehicleRef == "" {
		return nil, domainerrors.ErrValidation.WithDetails("vehicle reference is required")
	}

	reminders, err := s.reminders.ListByVehicle(ctx, vehicleRef)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders by vehicle")
	}

	return reminders, nil
}

func (s *reminderService) Create(ctx context.Context, caller *service.CallerProfile, input usecase.ReminderInput) (*entity.Reminder, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthContext
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	assignees, err := s.aggregateAssignees(ctx, input)
	if err != nil {
		return nil, err
	}

	now := s.now()
	reminder := &entity.Reminder{
		Title:             input.Title,
		Description:       input.Description,
		ScheduleKind:      input.ScheduleKind,
		ScheduledAt:       input.ScheduledAt,
		RecurrencePattern: input.RecurrencePattern,
		RecurrenceEndDate: input.RecurrenceEndDate,
		IsActive:          true,
		AssignedUsers:     assignees,
		Module:            input.Module,
		RelatedEntityID:   input.RelatedEntityID,
		AuthorID:          caller.ExternalID,
	}
	reminder.NextTrigger = recurrence.NextTriggerFor(reminder, now)

	created, err := s.reminders.Create(ctx, reminder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reminder")
	}

	s.propagateMaintenanceDate(ctx, created)
	s.emit(ctx, &service.ReminderEvent{
		Kind:       service.EventCreated,
		Reminder:   created,
		Identifier: created.PreferredIdentifier(),
		VehicleRef: created.RelatedEntityID,
	})

	return created, nil
}

func (s *reminderService) Update(ctx context.Context, reference string, input usecase.ReminderInput) (*entity.Reminder, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	record, err := s.Resolve(ctx, reference)
	if err != nil {
		return nil, err
	}
	target := s.redirectTarget(ctx, record)

	assignees, err := s.aggregateAssignees(ctx, input)
	if err != nil {
		return nil, err
	}

	next := *target
	next.Title = input.Title
	next.Description = input.Description
	next.ScheduleKind = input.ScheduleKind
	next.ScheduledAt = input.ScheduledAt
	next.RecurrencePattern = input.RecurrencePattern
	next.RecurrenceEndDate = input.RecurrenceEndDate
	next.AssignedUsers = assignees
	next.Module = input.Module
	next.RelatedEntityID = input.RelatedEntityID
	next.NextTrigger = recurrence.NextTriggerFor(&next, s.now())

	updated, err := s.reminders.Update(ctx, target.InternalID, &next)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update reminder")
	}

	s.propagateMaintenanceDate(ctx, updated)
	s.emit(ctx, &service.ReminderEvent{
		Kind:       service.EventUpdated,
		Reminder:   updated,
		Identifier: updated.PreferredIdentifier(),
		VehicleRef: updated.RelatedEntityID,
	})

	return updated, nil
}

func (s *reminderService) Delete(ctx context.Context, reference string) (string, error) {
	record, err := s.Resolve(ctx, reference)
	if err != nil {
		return "", err
	}
	target := s.redirectTarget(ctx, record)

	if err := s.reminders.Delete(ctx, target.InternalID); err != nil {
		return "", errors.Wrap(err, "failed to delete reminder")
	}

	// Only delete clears the vehicle's denormalized maintenance date.
	if s.isMaintenanceReminder(target) && target.RelatedEntityID != "" {
		if err := s.vehicles.SetNextMaintenanceDate(ctx, target.RelatedEntityID, nil); err != nil {
			s.logger.WarnContext(ctx, "failed to clear vehicle maintenance date",
				slog.String("vehicle", target.RelatedEntityID),
				slog.Any("error", err),
			)
		}
	}

	identifier := target.PreferredIdentifier()
	s.emit(ctx, &service.ReminderEvent{
		Kind:       service.EventDeleted,
		Identifier: identifier,
		VehicleRef: target.RelatedEntityID,
	})

	return identifier, nil
}

func (s *reminderService) ToggleActive(ctx context.Context, reference string) (*entity.Reminder, error) {
	record, err := s.Resolve(ctx, reference)
	if err != nil {
		return nil, err
	}
	target := s.redirectTarget(ctx, record)

	next := *target
	next.IsActive = !target.IsActive

	updated, err := s.reminders.Update(ctx, target.InternalID, &next)
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle reminder active state")
	}

	// Reactivation refreshes the maintenance date; deactivation leaves it.
	if updated.IsActive {
		s.propagateMaintenanceDate(ctx, updated)
	}

	newState := updated.IsActive
	s.emit(ctx, &service.ReminderEvent{
		Kind:       service.EventToggledActive,
		Reminder:   updated,
		Identifier: updated.PreferredIdentifier(),
		NewState:   &newState,
		VehicleRef: updated.RelatedEntityID,
	})

	return updated, nil
}

func (s *reminderService) ToggleCompleted(ctx context.Context, reference string) (*entity.Reminder, error) {
	record, err := s.Resolve(ctx, reference)
	if err != nil {
		return nil, err
	}
	target := s.redirectTarget(ctx, record)

	next := *target
	next.IsCompleted = !target.IsCompleted

	updated, err := s.reminders.Update(ctx, target.InternalID, &next)
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle reminder completed state")
	}

	newState := updated.IsCompleted
	s.emit(ctx, &service.ReminderEvent{
		Kind:       service.EventToggledComplete,
		Reminder:   updated,
		Identifier: updated.PreferredIdentifier(),
		NewState:   &newState,
		VehicleRef: updated.RelatedEntityID,
	})

	return updated, nil
}

// aggregateAssignees merges the caller's explicit selection with the
// recipients implied by the related vehicle. The union is a pure function of
// its inputs, so applying it twice yields the same set.
func (s *reminderService) aggregateAssignees(ctx context.Context, input usecase.ReminderInput) ([]entity.UserRef, error) {
	ids := make([]int64, 0, len(input.AssignedUserIDs))
	seen := make(map[int64]struct{}, len(input.AssignedUserIDs))

	add := func(id int64) {
		if id == 0 {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, id := range input.AssignedUserIDs {
		add(id)
	}

	if input.Module == constants.ModuleFleet && input.RelatedEntityID != "" {
		vehicle, err := s.vehicles.FindByReference(ctx, input.RelatedEntityID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return nil, domainerrors.ErrVehicleNotFound.WithDetails(input.RelatedEntityID)
			}

			return nil, errors.Wrap(err, "failed to load vehicle for recipient aggregation")
		}

		for _, u := range vehicle.ResponsibleUsers {
			add(u.ID)
		}
		for _, u := range vehicle.AssignedDrivers {
			add(u.ID)
		}
	}

	if len(ids) == 0 {
		return nil, domainerrors.ErrNoRecipients
	}

	return s.materializeUsers(ctx, ids), nil
}

// materializeUsers fills display data from the user directory so downstream
// consumers (mail dispatch, list rendering) do not need their own lookups.
// Ids absent from the directory are kept as bare references.
func (s *reminderService) materializeUsers(ctx context.Context, ids []int64) []entity.UserRef {
	directory, err := s.users.ListDirectory(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "user directory unavailable, keeping bare recipient ids", slog.Any("error", err))
		directory = nil
	}

	byID := make(map[int64]entity.UserRef, len(directory))
	for _, u := range directory {
		byID[u.ID] = u
	}

	users := make([]entity.UserRef, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			users = append(users, u)
			continue
		}
		users = append(users, entity.UserRef{ID: id})
	}

	return users
}

// propagateMaintenanceDate mirrors the reminder's next due date onto the
// related vehicle. The vehicle field is a convenience projection, not a
// source of truth, so failures are logged and swallowed.
func (s *reminderService) propagateMaintenanceDate(ctx context.Context, reminder *entity.Reminder) {
	if !s.isMaintenanceReminder(reminder) || reminder.RelatedEntityID == "" {
		return
	}

	next := recurrence.NextTriggerFor(reminder, s.now())
	if next == nil {
		return
	}

	if err := s.vehicles.SetNextMaintenanceDate(ctx, reminder.RelatedEntityID, next); err != nil {
		s.logger.WarnContext(ctx, "failed to propagate vehicle maintenance date",
			slog.String("vehicle", reminder.RelatedEntityID),
			slog.Time("next", *next),
			slog.Any("error", err),
		)
	}
}

func (s *reminderService) isMaintenanceReminder(reminder *entity.Reminder) bool {
	if reminder.Module != constants.ModuleFleet {
		return false
	}

	title := strings.ToLower(reminder.Title)
	for _, marker := range constants.MaintenanceTitleMarkers {
		if strings.Contains(title, marker) {
			return true
		}
	}

	return false
}

// emit announces the event in-process and, when a cross-instance publisher is
// configured, to the push pipeline as well.
func (s *reminderService) emit(ctx context.Context, event *service.ReminderEvent) {
	event.ID = uuid.NewString()
	event.Origin = service.OriginFromContext(ctx)
	event.RequestID = service.RequestIDFromContext(ctx)
	event.OccurredAt = s.now()

	s.bus.Publish(ctx, event)

	if s.publisher != nil {
		if err := s.publisher.PublishReminderEvent(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "failed to publish reminder event",
				slog.String("kind", string(event.Kind)),
				slog.Any("error", err),
			)
		}
	}
}

func validateInput(input usecase.ReminderInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidation.WithDetails("title is required")
	}
	if input.ScheduledAt.IsZero() {
		return domainerrors.ErrValidation.WithDetails("scheduledAt is required")
	}

	switch input.ScheduleKind {
	case entity.ScheduleUnique:
		// No pattern expected.
	case entity.ScheduleRecurring:
		if !input.RecurrencePattern.Valid() {
			return domainerrors.ErrValidation.WithDetails("unknown recurrence pattern")
		}
	default:
		return domainerrors.ErrValidation.WithDetails("unknown schedule kind")
	}

	return nil
}

// resolutionMiss reports whether the error means "this strategy found
// nothing" as opposed to a failure that should abort resolution.
func resolutionMiss(err error) bool {
	return errors.Is(err, repository.ErrRecordNotFound) || errors.Is(err, repository.ErrQueryNotSupported)
}
