package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/internal/store"
	"chuma.band/site/pkg/utils/format"
)

type trackResponse struct {
	store.Track
	PlaysDisplay string `json:"playsDisplay"`
}

// HandleMusic returns the public discography with display-ready play counts.
func HandleMusic(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		tracks := st.Music(c.Request().Context())
		out := make([]trackResponse, 0, len(tracks))
		for _, t := range tracks {
			out = append(out, trackResponse{
				Track:        t,
				PlaysDisplay: format.Number(t.Plays),
			})
		}
		return c.JSON(http.StatusOK, out)
	}
}
