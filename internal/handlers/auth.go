package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rosered/backend/internal/metrics"
	"github.com/rosered/backend/internal/mykafka"
	"github.com/rosered/backend/internal/store"
)

type AuthHandler struct {
	Auth     *store.AuthStore
	Producer *mykafka.Producer
	Metrics  *metrics.Collector
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Email         string `json:"email"`
		Password      string `json:"password"`
		SubscribeNews bool   `json:"subscribeNews"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.Auth.Register(req.Email, req.Password, req.SubscribeNews)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
		case errors.Is(err, store.ErrUserAlreadyExist):
			return echo.NewHTTPError(http.StatusConflict, "user already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("auth", "register")

	publish(c, h.Producer, "user_events", user.ID, map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("auth", "login")

	publish(c, h.Producer, "user_events", user.ID, map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.Auth.Logout(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("auth", "logout")

	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// Profile returns the user the session pointer resolves to.
func (h *AuthHandler) Profile(c echo.Context) error {
	user := h.Auth.CurrentUser()
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
