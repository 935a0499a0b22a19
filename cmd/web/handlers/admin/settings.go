package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
)

type settingsUpdateRequest struct {
	HeroText        *string        `json:"heroText"`
	MarqueeText     *string        `json:"marqueeText"`
	ContactEmail    *string        `json:"contactEmail"`
	BookingEmail    *string        `json:"bookingEmail"`
	Socials         *store.Socials `json:"socials"`
	ThemeColor      *string        `json:"themeColor"`
	MaintenanceMode *bool          `json:"maintenanceMode"`
}

// HandleSettingsUpdate patches the site settings singleton. Absent fields
// are left untouched.
func HandleSettingsUpdate(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req settingsUpdateRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}
		updated, err := st.UpdateSettings(c.Request().Context(), store.UpdateSettingsParams{
			HeroText:        req.HeroText,
			MarqueeText:     req.MarqueeText,
			ContactEmail:    req.ContactEmail,
			BookingEmail:    req.BookingEmail,
			Socials:         req.Socials,
			ThemeColor:      req.ThemeColor,
			MaintenanceMode: req.MaintenanceMode,
		})
		if err != nil {
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}
