package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "fleetdesk/internal/delivery/context"
	"fleetdesk/internal/delivery/http/response"
	"fleetdesk/internal/domain/entity"
	domainerrors "fleetdesk/internal/domain/errors"
	"fleetdesk/internal/usecase"
)

// reminderRequest is the wire payload for create and full-replace update.
type reminderRequest struct {
	Title             string     `json:"title" validate:"required"`
	Description       string     `json:"description"`
	ScheduleKind      string     `json:"scheduleKind" validate:"required,oneof=unique recurring"`
	ScheduledAt       time.Time  `json:"scheduledAt" validate:"required"`
	RecurrencePattern string     `json:"recurrencePattern" validate:"omitempty,oneof=daily weekly biweekly monthly yearly"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate"`
	AssignedUserIDs   []int64    `json:"assignedUserIds"`
	Module            string     `json:"module"`
}

func (r *reminderRequest) toInput(vehicleRef string) usecase.ReminderInput {
	return usecase.ReminderInput{
		Title:             r.Title,
		Description:       r.Description,
		ScheduleKind:      entity.ScheduleKind(r.ScheduleKind),
		ScheduledAt:       r.ScheduledAt,
		RecurrencePattern: entity.RecurrencePattern(r.RecurrencePattern),
		RecurrenceEndDate: r.RecurrenceEndDate,
		AssignedUserIDs:   r.AssignedUserIDs,
		Module:            r.Module,
		RelatedEntityID:   vehicleRef,
	}
}

// ReminderHandler serves the per-vehicle reminder API. Requests go through a
// pool of mounted list views, one per vehicle, so reads are served from local
// state kept consistent by the event bus and mutations get the per-view
// in-flight guard.
type ReminderHandler struct {
	views usecase.ListViewUsecase

	mu   sync.Mutex
	open map[string]usecase.ListView
}

// ReminderHandlerParams holds dependencies for the ReminderHandler.
type ReminderHandlerParams struct {
	fx.In

	Lc    fx.Lifecycle `optional:"true"`
	Views usecase.ListViewUsecase
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	h := &ReminderHandler{
		views: params.Views,
		open:  make(map[string]usecase.ListView),
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				h.closeAll()

				return nil
			},
		})
	}

	return h
}

// viewFor returns the mounted view for the vehicle, opening it on first use.
// The initial open performs a network load, so it runs outside the pool lock;
// a concurrently opened duplicate loses the race and is closed.
func (h *ReminderHandler) viewFor(ctx context.Context, vehicleRef string) (usecase.ListView, error) {
	h.mu.Lock()
	if view, ok := h.open[vehicleRef]; ok {
		h.mu.Unlock()

		return view, nil
	}
	h.mu.Unlock()

	view, err := h.views.OpenView(ctx, vehicleRef)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.open[vehicleRef]; ok {
		view.Close()

		return existing, nil
	}
	h.open[vehicleRef] = view

	return view, nil
}

// closeAll unmounts every open view, stopping their bus subscriptions and
// pending reconciliations.
func (h *ReminderHandler) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ref, view := range h.open {
		view.Close()
		delete(h.open, ref)
	}
}

// List returns the vehicle's reminders from the mounted view's local state.
func (h *ReminderHandler) List(c echo.Context) error {
	view, err := h.viewFor(c.Request().Context(), c.Param("vehicle"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view.Reminders(), "")
}

// Create creates a reminder for the vehicle.
func (h *ReminderHandler) Create(c echo.Context) error {
	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidation.ErrorCode(), "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.viewFor(c.Request().Context(), c.Param("vehicle"))
	if err != nil {
		return err
	}

	created, err := view.Create(c.Request().Context(), deliverycontext.GetCaller(c), req.toInput(c.Param("vehicle")))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, created, "Reminder created")
}

// Update performs a full replace of the reminder's editable fields.
func (h *ReminderHandler) Update(c echo.Context) error {
	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidation.ErrorCode(), "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.viewFor(c.Request().Context(), c.Param("vehicle"))
	if err != nil {
		return err
	}

	updated, err := view.Update(c.Request().Context(), c.Param("reference"), req.toInput(c.Param("vehicle")))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Reminder updated")
}

// Delete removes the reminder.
func (h *ReminderHandler) Delete(c echo.Context) error {
	view, err := h.viewFor(c.Request().Context(), c.Param("vehicle"))
	if err != nil {
		return err
	}

	if err := view.Delete(c.Request().Context(), c.Param("reference")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Reminder deleted")
}

// ToggleActive flips the reminder's active flag.
func (h *ReminderHandler) ToggleActive(c echo.Context) error {
	view, err := h.viewFor(c.Request().Context(), c.Param("vehicle"))
	if err != nil {
		return err
	}

	updated, err := view.ToggleActive(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Reminder active state toggled")
}

// ToggleCompleted flips the reminder's completed flag.
func (h *ReminderHandler) ToggleCompleted(c echo.Context) error {
	view, err := h.viewFor(c.Request().Context(), c.Param("vehicle"))
	if err != nil {
		return err
	}

	updated, err := view.ToggleCompleted(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Reminder completed state toggled")
}

// EditForm returns the reminder reshaped for an edit form, with assigned
// users reconciled to numeric directory ids.
func (h *ReminderHandler) EditForm(c echo.Context) error {
	view, err := h.viewFor(c.Request().Context(), c.Param("vehicle"))
	if err != nil {
		return err
	}

	form, err := view.PrepareEdit(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, form, "")
}
