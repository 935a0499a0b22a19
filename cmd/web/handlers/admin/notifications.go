package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
)

func HandleNotificationRead(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}
		if err := st.MarkNotificationRead(c.Request().Context(), id); err != nil {
			return common.FromStoreError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
