package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flyhigh-app/flyhigh/internal/auth"
	"github.com/flyhigh-app/flyhigh/internal/models"
	"github.com/flyhigh-app/flyhigh/internal/ratelimit"
)

type AuthHandler struct {
	auth    *auth.Service
	limiter *ratelimit.LoginLimiter
}

func NewAuthHandler(svc *auth.Service, limiter *ratelimit.LoginLimiter) *AuthHandler {
	return &AuthHandler{
		auth:    svc,
		limiter: limiter,
	}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	user, err := h.auth.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return authError(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	if req.Email != "" && !h.limiter.Allow(req.Email) {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limited",
			Message: "Too many login attempts. Please wait a moment and try again.",
			Code:    http.StatusTooManyRequests,
		})
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		return authError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "logged_out",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user := h.auth.CurrentUser()
	if user == nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "No active session.",
			Code:    http.StatusUnauthorized,
		})
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var update auth.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return bindError(c, err)
	}

	if err := h.auth.UpdateProfile(c.Request().Context(), update); err != nil {
		return err
	}

	user := h.auth.CurrentUser()
	if user == nil {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "anonymous",
		})
	}
	return c.JSON(http.StatusOK, user)
}

// Activity feeds the idle-timeout clock: any request while a session is
// active counts as user activity.
func (h *AuthHandler) Activity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h.auth.Touch()
		return next(c)
	}
}

func bindError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: "Failed to parse request body: " + err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func authError(c echo.Context, err error) error {
	var (
		validationErr *auth.ValidationError
		conflictErr   *auth.ConflictError
		notFoundErr   *auth.NotFoundError
		authErr       *auth.AuthError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Code:    http.StatusBadRequest,
		})
	case errors.As(err, &conflictErr):
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict",
			Message: conflictErr.Error(),
			Code:    http.StatusConflict,
		})
	case errors.As(err, &notFoundErr):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: notFoundErr.Error(),
			Code:    http.StatusNotFound,
		})
	case errors.As(err, &authErr):
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "auth_error",
			Message: authErr.Error(),
			Code:    http.StatusUnauthorized,
		})
	default:
		return err
	}
}
