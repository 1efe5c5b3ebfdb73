package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskmanager/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers godoc
// @Summary List users
// @Description Returns every registered user. The response includes password hashes.
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, users)
}
