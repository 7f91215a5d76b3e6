package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rosered/backend/internal/store"
)

// AdminOnly gates the admin panel routes on the isAdmin flag.
func AdminOnly(auth *store.AuthStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := auth.CurrentUser()
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			if !store.IsAdmin(user) {
				return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
			}
			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}
