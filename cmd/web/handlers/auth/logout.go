package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	webauth "chuma.band/site/cmd/web/auth"
	"chuma.band/site/internal/store"
)

// HandleLogout always succeeds, logged in or not.
func HandleLogout(sm *webauth.SessionManager, st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		st.Logout(c.Request().Context())
		sm.ClearSession(c.Response().Writer, c.Request())
		return c.NoContent(http.StatusNoContent)
	}
}
