package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
)

func HandleUsersIndex(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := st.Users(c.Request().Context())
		if err != nil {
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusOK, users)
	}
}

type userStatusRequest struct {
	Status store.Status `json:"status"`
}

func HandleUserStatus(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}
		var req userStatusRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}
		if err := st.SetUserStatus(c.Request().Context(), id, req.Status); err != nil {
			return common.FromStoreError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

type userRoleRequest struct {
	Role store.Role `json:"role"`
}

func HandleUserRole(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}
		var req userRoleRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}
		if err := st.SetUserRole(c.Request().Context(), id, req.Role); err != nil {
			return common.FromStoreError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
