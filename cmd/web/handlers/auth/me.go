package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	webauth "chuma.band/site/cmd/web/auth"
	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
)

// HandleMe returns the signed-in user's profile.
func HandleMe(sm *webauth.SessionManager, st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !sm.IsAuthenticated(c.Request()) {
			return common.ErrUnauthorized()
		}
		user, ok := st.CurrentUser()
		if !ok {
			return common.ErrUnauthorized()
		}
		return c.JSON(http.StatusOK, user)
	}
}
