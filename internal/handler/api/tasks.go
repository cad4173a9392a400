package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"SolarAPI/internal/domain/models"
	domrepo "SolarAPI/internal/domain/repository"
	"SolarAPI/internal/usecase"
	xhttp "SolarAPI/pkg/http"
	xlogger "SolarAPI/pkg/logger"
)

// TasksHandler exposes task CRUD endpoints.
type TasksHandler struct {
	logger *xlogger.Logger
	tasks  *usecase.TaskService
}

func NewTasksHandler(logger *xlogger.Logger, tasks *usecase.TaskService) *TasksHandler {
	return &TasksHandler{logger: logger, tasks: tasks}
}

func (h *TasksHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/tasks")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *TasksHandler) Create(c echo.Context) error {
	req := &models.TaskCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	task, err := h.tasks.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domrepo.ErrNotFound) {
			return xhttp.NotFoundResponse(c, "user not found")
		}
		return h.mapError(c, err)
	}
	return xhttp.CreatedResponse(c, task)
}

func (h *TasksHandler) List(c echo.Context) error {
	req := &models.ListTasksRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	tasks, err := h.tasks.List(c.Request().Context(), domrepo.TaskFilter{
		UserID:    req.UserID,
		Completed: req.Completed,
		Skip:      req.Skip,
		Limit:     req.Limit,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.ListResponse(c, tasks, int64(len(tasks)))
}

func (h *TasksHandler) Get(c echo.Context) error {
	task, err := h.tasks.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.SuccessResponse(c, task)
}

func (h *TasksHandler) Update(c echo.Context) error {
	req := &models.TaskUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	task, err := h.tasks.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.SuccessResponse(c, task)
}

func (h *TasksHandler) Delete(c echo.Context) error {
	if err := h.tasks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]string{"message": "task deleted"})
}

func (h *TasksHandler) mapError(c echo.Context, err error) error {
	if errors.Is(err, domrepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "task not found")
	}
	h.logger.Error("tasks handler error", xlogger.Error(err))
	return xhttp.InternalServerErrorResponse(c)
}
