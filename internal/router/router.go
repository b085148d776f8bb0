package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/lifesync/backend/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Profile *apiHandler.ProfileHandler
	Task    *apiHandler.TaskHandler
	Event   *apiHandler.EventHandler
	Agenda  *apiHandler.AgendaHandler
	Health  *apiHandler.HealthHandler
}

// New wires the route table. Register and login are the only routes
// reachable without a resolved principal.
func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public auth routes
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)

	// Protected routes
	r.GET("/api/v1/profile", authMiddleware(handlers.Profile.Get))

	r.GET("/api/v1/appointments", authMiddleware(handlers.Agenda.List))

	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.List))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.Create))
	r.GET("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Get))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Edit))
	r.PATCH("/api/v1/tasks/{id}/complete", authMiddleware(handlers.Task.Complete))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Deactivate))

	r.GET("/api/v1/events", authMiddleware(handlers.Event.List))
	r.POST("/api/v1/events", authMiddleware(handlers.Event.Create))
	r.GET("/api/v1/events/{id}", authMiddleware(handlers.Event.Get))
	r.PUT("/api/v1/events/{id}", authMiddleware(handlers.Event.Edit))
	r.DELETE("/api/v1/events/{id}", authMiddleware(handlers.Event.Deactivate))

	return r
}
