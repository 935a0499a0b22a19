package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/enrich"
	"chuma.band/site/internal/mediaid"
	"chuma.band/site/internal/store"
)

type videoCreateRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type videoCreateResponse struct {
	store.Video
	Advisory string `json:"advisory,omitempty"`
}

// HandleVideoCreate stores a video with enriched metadata. Like track
// creates, upstream failures degrade the result instead of blocking it.
func HandleVideoCreate(st *store.Store, enricher *enrich.Enricher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req videoCreateRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}

		res, advisory, err := enrichForCreate(c, enricher, req.URL, mediaid.PlatformYouTube)
		if err != nil {
			return err
		}

		title := req.Title
		if title == "" {
			title = res.Title
		}

		video, err := st.AddVideo(c.Request().Context(), store.AddVideoParams{
			Title:     title,
			URL:       res.CanonicalURL,
			Thumbnail: res.Thumbnail,
			Views:     res.Popularity,
		})
		if err != nil {
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusCreated, videoCreateResponse{Video: video, Advisory: advisory})
	}
}

func HandleVideoDelete(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}
		if err := st.DeleteVideo(c.Request().Context(), id); err != nil {
			return common.FromStoreError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
