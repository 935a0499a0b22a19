package enrich

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// youtubeVideo is the subset of the Data API v3 videos.list payload we use.
type youtubeVideo struct {
	Title        string
	ChannelTitle string
	ViewCount    int64
}

type youtubeListResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		Statistics struct {
			// The API reports counts as numeric strings.
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type youtubeErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// fetchYouTubeVideo asks the authoritative metadata endpoint for one video.
// The credential is passed in so a single Enrich call uses one consistent key.
func (e *Enricher) fetchYouTubeVideo(ctx context.Context, videoID, credential string) (*youtubeVideo, error) {
	u, err := url.Parse(e.youtubeAPIBase + "/youtube/v3/videos")
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("part", "snippet,statistics")
	q.Set("id", videoID)
	q.Set("key", credential)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		var apiErr youtubeErrorResponse
		msg := ""
		if json.Unmarshal(body, &apiErr) == nil {
			msg = strings.TrimSpace(apiErr.Error.Message)
		}
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out youtubeListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}
	if len(out.Items) == 0 {
		return nil, ErrNotFound
	}

	item := out.Items[0]
	views, err := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	if err != nil || views < 0 {
		views = 0
	}

	return &youtubeVideo{
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		ViewCount:    views,
	}, nil
}
