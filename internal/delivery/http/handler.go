package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskboard/internal/application/command"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/domain"
	"taskboard/internal/domain/entities"
)

type Handler struct {
	authService interfaces.AuthService
	taskService interfaces.TaskService
}

func NewHandler(authService interfaces.AuthService, taskService interfaces.TaskService) *Handler {
	return &Handler{
		authService: authService,
		taskService: taskService,
	}
}

func (h *Handler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "pong"})
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	result, err := h.authService.Register(&command.RegisterCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Message: "User registered",
		Token:   result.Token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	result, err := h.authService.Login(&command.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   result.Token,
	})
}

func (h *Handler) Profile(c echo.Context) error {
	claims := claimsFromContext(c)

	result, err := h.authService.GetProfile(c.Request().Context(), claims.UserId)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, profileResponse{
		Message: "OK",
		User:    result.Result,
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	claims := claimsFromContext(c)

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	result, err := h.taskService.CreateTask(&command.CreateTaskCommand{
		UserId:      claims.UserId,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, taskResponse{
		Message: "Task created",
		Task:    result.Task,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	claims := claimsFromContext(c)

	result, err := h.taskService.ListTasks(claims.UserId)
	if err != nil {
		return writeError(c, err)
	}

	// The list endpoint returns a bare array, not an envelope.
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	claims := claimsFromContext(c)

	taskId, err := parseTaskId(c)
	if err != nil {
		return writeError(c, err)
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	result, err := h.taskService.UpdateTask(&command.UpdateTaskCommand{
		UserId: claims.UserId,
		TaskId: taskId,
		Patch: entities.TaskPatch{
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			DueDate:     req.DueDate,
			Completed:   req.Completed,
		},
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, taskResponse{
		Message: "Task updated",
		Task:    result.Task,
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	claims := claimsFromContext(c)

	taskId, err := parseTaskId(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.taskService.DeleteTask(claims.UserId, taskId); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, deleteTaskResponse{
		Message: "Task deleted",
		Id:      taskId,
	})
}

func (h *Handler) BulkDelete(c echo.Context) error {
	claims := claimsFromContext(c)

	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	result, err := h.taskService.BulkDelete(&command.BulkDeleteCommand{
		UserId: claims.UserId,
		Ids:    req.Ids,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, bulkDeleteResponse{
		Message: "Bulk delete completed",
		Results: result.Items,
	})
}

// A non-numeric id cannot match any row, so it reports the same way a
// missing row does.
func parseTaskId(c echo.Context) (int64, error) {
	taskId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.NewNotFoundError("Task not found")
	}
	return taskId, nil
}

// writeError maps the domain error taxonomy onto status codes. Anything
// outside the taxonomy is logged and reported generically.
func writeError(c echo.Context, err error) error {
	var (
		validationErr *domain.ValidationError
		authErr       *domain.AuthError
		conflictErr   *domain.ConflictError
		notFoundErr   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: validationErr.Message})
	case errors.As(err, &authErr):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: authErr.Message})
	case errors.As(err, &conflictErr):
		return c.JSON(http.StatusConflict, errorResponse{Error: conflictErr.Message})
	case errors.As(err, &notFoundErr):
		return c.JSON(http.StatusNotFound, errorResponse{Error: notFoundErr.Message})
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error"})
	}
}
