package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/internal/store"
	"chuma.band/site/pkg/utils/markdown"
)

type settingsResponse struct {
	store.Settings
	HeroHTML string `json:"heroHtml"`
}

func HandleSettings(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings := st.GetSettings(c.Request().Context())
		return c.JSON(http.StatusOK, settingsResponse{
			Settings: settings,
			HeroHTML: markdown.RenderHTML(settings.HeroText),
		})
	}
}
