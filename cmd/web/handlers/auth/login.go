package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	webauth "chuma.band/site/cmd/web/auth"
	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
)

type loginRequest struct {
	Email string `json:"email"`
}

// HandleLogin signs a visitor in by email, provisioning an account on first
// contact. Suspended accounts are rejected before any session is written.
func HandleLogin(sm *webauth.SessionManager, st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}
		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" {
			return common.ErrBadRequest("email is required")
		}

		user, err := st.Login(c.Request().Context(), req.Email)
		if err != nil {
			return common.FromStoreError(err)
		}

		accessLevel := webauth.AccessUser
		if user.Role == store.RoleAdmin {
			accessLevel = webauth.AccessAdmin
		}

		if err := sm.SaveSession(c.Response().Writer, c.Request(), user.ID, user.Email, accessLevel); err != nil {
			slog.Error("failed to save session", "error", err)
			return common.ErrInternal("failed to save session")
		}

		return c.JSON(http.StatusOK, user)
	}
}
