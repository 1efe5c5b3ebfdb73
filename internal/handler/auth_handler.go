package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskmanager/internal/auth"
	"taskmanager/internal/errors"
	"taskmanager/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request. An empty name is accepted.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request. Empty values fall through to the
// credential check and are rejected there.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the body of operations that only acknowledge success.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Msg: "User registered"})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Logout godoc
// @Summary Revoke the presented access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Detail: auth.ErrTokenInvalid.Error(),
			Code:   "UNAUTHORIZED",
		})
	}

	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Msg: "Logged out"})
}
