package http

import (
	"github.com/labstack/echo/v4"

	"taskboard/internal/infrastructure"
)

// RegisterRoutes wires every endpoint onto the echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler, jwtService *infrastructure.JWTService) {
	api := e.Group("/api")

	// Public routes
	api.GET("/ping", h.Ping)
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	// Authenticated routes
	protected := api.Group("", Authenticate(jwtService))
	protected.GET("/profile", h.Profile)
	protected.GET("/tasks", h.ListTasks)
	protected.POST("/tasks", h.CreateTask)
	protected.PUT("/tasks/:id", h.UpdateTask)
	protected.DELETE("/tasks/:id", h.DeleteTask)
	protected.POST("/tasks/bulk-delete", h.BulkDelete)
}
