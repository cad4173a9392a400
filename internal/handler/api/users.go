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

// UsersHandler exposes user CRUD endpoints.
type UsersHandler struct {
	logger *xlogger.Logger
	users  *usecase.UserService
}

func NewUsersHandler(logger *xlogger.Logger, users *usecase.UserService) *UsersHandler {
	return &UsersHandler{logger: logger, users: users}
}

func (h *UsersHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/users")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *UsersHandler) Create(c echo.Context) error {
	req := &models.UserCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	user, err := h.users.Create(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.CreatedResponse(c, user)
}

func (h *UsersHandler) List(c echo.Context) error {
	req := &models.ListUsersRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	users, err := h.users.List(c.Request().Context(), req.Skip, req.Limit)
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.ListResponse(c, users, int64(len(users)))
}

func (h *UsersHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.SuccessResponse(c, user)
}

func (h *UsersHandler) Update(c echo.Context) error {
	req := &models.UserUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.SuccessResponse(c, user)
}

func (h *UsersHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]string{"message": "user deleted"})
}

func (h *UsersHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domrepo.ErrNotFound):
		return xhttp.NotFoundResponse(c, "user not found")
	case errors.Is(err, domrepo.ErrEmailTaken):
		return xhttp.BadRequestResponse(c, "email already registered")
	default:
		h.logger.Error("users handler error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
}
