package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/internal/store"
)

func HandleNotifications(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, st.Notifications(c.Request().Context()))
	}
}
