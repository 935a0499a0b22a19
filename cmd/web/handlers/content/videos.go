package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/internal/store"
	"chuma.band/site/pkg/utils/format"
)

type videoResponse struct {
	store.Video
	ViewsDisplay string `json:"viewsDisplay"`
}

// HandleVideos returns the video reel. The reel shows exact view counts
// ("75,430,210 views"), unlike the compact music listing.
func HandleVideos(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		videos := st.Videos(c.Request().Context())
		out := make([]videoResponse, 0, len(videos))
		for _, v := range videos {
			out = append(out, videoResponse{
				Video:        v,
				ViewsDisplay: format.Count(v.Views),
			})
		}
		return c.JSON(http.StatusOK, out)
	}
}
