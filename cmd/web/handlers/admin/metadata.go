package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/enrich"
	"chuma.band/site/internal/store"
)

type metadataRequest struct {
	URL  string          `json:"url"`
	Kind store.MediaKind `json:"type"`
}

type metadataResponse struct {
	CanonicalURL string `json:"canonicalUrl"`
	Title        string `json:"title,omitempty"`
	Attribution  string `json:"attribution,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Popularity   int64  `json:"popularity"`
	Advisory     string `json:"advisory,omitempty"`
}

// HandleMetadataPreview runs the enrichment pipeline without storing
// anything, so the back-office can preview a pasted URL before saving.
func HandleMetadataPreview(enricher *enrich.Enricher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req metadataRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}

		res, err := enricher.Enrich(c.Request().Context(), req.URL, platformForKind(req.Kind))
		if err != nil {
			return common.FromEnrichError(err)
		}

		out := metadataResponse{
			CanonicalURL: res.CanonicalURL,
			Title:        res.Title,
			Attribution:  res.Attribution,
			Thumbnail:    res.Thumbnail,
			Popularity:   res.Popularity,
		}
		if res.Advisory != nil {
			out.Advisory = res.Advisory.Error()
		}
		return c.JSON(http.StatusOK, out)
	}
}
