// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"fleetdesk/internal/delivery/http/middleware"
	"fleetdesk/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	ReminderHandler *handler.ReminderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	reminderHandler *handler.ReminderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reminderHandler: params.ReminderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	reminders := api.Group("/vehicles/:vehicle/reminders")
	{
		reminders.GET("", r.reminderHandler.List)
		reminders.POST("", r.reminderHandler.Create)
		reminders.PUT("/:reference", r.reminderHandler.Update)
		reminders.DELETE("/:reference", r.reminderHandler.Delete)
		reminders.POST("/:reference/toggle-active", r.reminderHandler.ToggleActive)
		reminders.POST("/:reference/toggle-completed", r.reminderHandler.ToggleCompleted)
		reminders.GET("/:reference/edit-form", r.reminderHandler.EditForm)
	}
}
