package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rosered/backend/internal/models"
	"github.com/rosered/backend/internal/store"
)

const contextUserKey = "user"

// RequireLogin resolves the session pointer and rejects anonymous requests.
func RequireLogin(auth *store.AuthStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := auth.CurrentUser()
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}

func UserFromContext(c echo.Context) *models.User {
	if u, ok := c.Get(contextUserKey).(*models.User); ok {
		return u
	}
	return nil
}
