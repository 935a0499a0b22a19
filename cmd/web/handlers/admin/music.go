package admin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/enrich"
	"chuma.band/site/internal/mediaid"
	"chuma.band/site/internal/store"
)

type trackCreateRequest struct {
	Title    string          `json:"title"`
	Artist   string          `json:"artist"`
	Album    string          `json:"album"`
	Kind     store.MediaKind `json:"type"`
	URL      string          `json:"url"`
	Category string          `json:"category"`
}

type trackCreateResponse struct {
	store.Track
	Advisory string `json:"advisory,omitempty"`
}

// HandleTrackCreate normalizes the pasted URL, enriches it against the
// platform's metadata source, and stores the track. Upstream trouble degrades
// the create rather than blocking it: the operator's fields plus whatever the
// partial result derived still go in, with the problem surfaced as an
// advisory. Only an unusable URL or missing required fields fail the create.
func HandleTrackCreate(st *store.Store, enricher *enrich.Enricher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req trackCreateRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}

		res, advisory, err := enrichForCreate(c, enricher, req.URL, platformForKind(req.Kind))
		if err != nil {
			return err
		}

		title := req.Title
		if title == "" {
			title = res.Title
		}
		artist := req.Artist
		if artist == "" {
			artist = res.Attribution
		}

		track, err := st.AddTrack(c.Request().Context(), store.AddTrackParams{
			Title:    title,
			Artist:   artist,
			Album:    req.Album,
			Kind:     req.Kind,
			URL:      res.CanonicalURL,
			CoverArt: res.Thumbnail,
			Category: req.Category,
		})
		if err != nil {
			return common.FromStoreError(err)
		}

		// Play counts are only ever applied after the insert.
		if res.Popularity > 0 {
			if err := st.UpdateTrackPlays(c.Request().Context(), track.ID, res.Popularity); err != nil {
				return common.FromStoreError(err)
			}
			track.Plays = res.Popularity
		}

		return c.JSON(http.StatusCreated, trackCreateResponse{Track: track, Advisory: advisory})
	}
}

// enrichForCreate runs the pipeline for a content create. An invalid URL is
// the only fatal enrichment failure; anything upstream comes back as an
// advisory string alongside the partial result.
func enrichForCreate(c echo.Context, enricher *enrich.Enricher, rawURL string, platform mediaid.Platform) (enrich.Result, string, error) {
	res, err := enricher.Enrich(c.Request().Context(), rawURL, platform)
	if err != nil {
		if errors.Is(err, enrich.ErrInvalidURL) {
			return enrich.Result{}, "", common.FromEnrichError(err)
		}
		slog.Warn("metadata lookup failed, creating degraded", "url", rawURL, "error", err)
		return res, err.Error(), nil
	}
	if res.Advisory != nil {
		slog.Warn("metadata lookup degraded", "url", rawURL, "advisory", res.Advisory)
		return res, res.Advisory.Error(), nil
	}
	return res, "", nil
}

func HandleTrackDelete(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}
		if err := st.DeleteTrack(c.Request().Context(), id); err != nil {
			return common.FromStoreError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
