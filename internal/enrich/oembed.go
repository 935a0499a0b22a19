package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// oembedMeta is the loose schema shared by the embed-metadata endpoints.
// Nothing beyond title/author/thumbnail is guaranteed.
type oembedMeta struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// fetchNoembed does the generic best-effort embed lookup used when no
// credential is configured.
func (e *Enricher) fetchNoembed(ctx context.Context, mediaURL string) (*oembedMeta, error) {
	return e.fetchOEmbed(ctx, e.noembedBase+"/embed?url="+url.QueryEscape(mediaURL))
}

// fetchSpotifyOEmbed resolves title and cover art for a canonical track URL.
func (e *Enricher) fetchSpotifyOEmbed(ctx context.Context, trackURL string) (*oembedMeta, error) {
	return e.fetchOEmbed(ctx, e.spotifyOEmbedBase+"/oembed?url="+url.QueryEscape(trackURL))
}

func (e *Enricher) fetchOEmbed(ctx context.Context, endpoint string) (*oembedMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "oembed lookup failed"}
	}

	var meta oembedMeta
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "malformed oembed response: " + err.Error()}
	}
	return &meta, nil
}
