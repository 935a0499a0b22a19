// Package enrich derives display metadata (title, attribution, thumbnail,
// popularity) for a pasted media URL. With an API credential it asks the
// platform's authoritative endpoint; without one it degrades to a best-effort
// oEmbed lookup and flags the result with an advisory error.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"chuma.band/site/internal/mediaid"
)

var (
	// ErrInvalidURL means normalization failed for a platform that requires
	// an identifier. Fatal; no fields are derived.
	ErrInvalidURL = errors.New("invalid media url")

	// ErrNotFound means the authoritative endpoint answered successfully but
	// had no item for the identifier.
	ErrNotFound = errors.New("media not found upstream")

	// ErrMissingCredential is advisory: the best-effort path was used, so
	// popularity counts are unavailable. The result stays usable.
	ErrMissingCredential = errors.New("api credential missing, popularity unavailable")
)

// UpstreamError carries the upstream API's message on a non-success response.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream error (status %d)", e.StatusCode)
}

// Result holds whatever metadata could be derived. Fields filled before a
// failure survive it; Advisory signals a degraded but usable result.
type Result struct {
	CanonicalURL string
	Title        string
	Attribution  string
	Thumbnail    string
	Popularity   int64
	Advisory     error
}

type Enricher struct {
	http *http.Client

	// credentialMu guards credential: the admin UI swaps the key while
	// enrichment requests are in flight on other goroutines.
	credentialMu sync.RWMutex
	credential   string

	// Overridable for tests.
	youtubeAPIBase    string
	noembedBase       string
	spotifyOEmbedBase string
}

type Option func(*Enricher)

// WithCredential sets the authoritative API key. Empty means fallback-only.
func WithCredential(key string) Option {
	return func(e *Enricher) { e.credential = strings.TrimSpace(key) }
}

func WithYouTubeAPIBase(base string) Option {
	return func(e *Enricher) { e.youtubeAPIBase = strings.TrimRight(base, "/") }
}

func WithNoembedBase(base string) Option {
	return func(e *Enricher) { e.noembedBase = strings.TrimRight(base, "/") }
}

func WithSpotifyOEmbedBase(base string) Option {
	return func(e *Enricher) { e.spotifyOEmbedBase = strings.TrimRight(base, "/") }
}

func New(opts ...Option) *Enricher {
	e := &Enricher{
		http: &http.Client{
			Timeout: 8 * time.Second,
		},
		youtubeAPIBase:    "https://www.googleapis.com",
		noembedBase:       "https://noembed.com",
		spotifyOEmbedBase: "https://open.spotify.com",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetCredential replaces the API key at runtime (the admin UI lets the
// operator paste one without restarting).
func (e *Enricher) SetCredential(key string) {
	e.credentialMu.Lock()
	defer e.credentialMu.Unlock()
	e.credential = strings.TrimSpace(key)
}

func (e *Enricher) getCredential() string {
	e.credentialMu.RLock()
	defer e.credentialMu.RUnlock()
	return e.credential
}

// Enrich normalizes rawURL for the declared platform and fills in metadata.
//
// Network and format failures never panic: fatal conditions come back as the
// error return, the advisory condition rides on Result.Advisory, and any
// fields derived before a failure are kept in the returned Result.
func (e *Enricher) Enrich(ctx context.Context, rawURL string, platform mediaid.Platform) (Result, error) {
	norm, err := mediaid.Normalize(rawURL, platform)
	if err != nil {
		if platform == mediaid.PlatformYouTube || platform == mediaid.PlatformSpotify {
			return Result{}, ErrInvalidURL
		}
		return Result{}, err
	}

	res := Result{CanonicalURL: norm.CanonicalURL}

	switch platform {
	case mediaid.PlatformYouTube:
		return e.enrichYouTube(ctx, norm, res)
	case mediaid.PlatformSpotify:
		return e.enrichSpotify(ctx, norm, res)
	default:
		// Direct files carry no derivable metadata.
		return res, nil
	}
}

func (e *Enricher) enrichYouTube(ctx context.Context, norm mediaid.Normalized, res Result) (Result, error) {
	// Thumbnail follows a fixed URL convention; no network call needed.
	res.Thumbnail = mediaid.ThumbnailURL(norm.ID)

	credential := e.getCredential()
	if credential == "" {
		// Best effort: generic embed metadata gives title/attribution only.
		// Failures here are silently ignored, the advisory stays either way.
		if meta, err := e.fetchNoembed(ctx, norm.CanonicalURL); err == nil {
			if meta.Title != "" {
				res.Title = meta.Title
			}
			if meta.AuthorName != "" {
				res.Attribution = meta.AuthorName
			}
		}
		res.Advisory = ErrMissingCredential
		return res, nil
	}

	video, err := e.fetchYouTubeVideo(ctx, norm.ID, credential)
	if err != nil {
		return res, err
	}
	res.Title = video.Title
	res.Attribution = video.ChannelTitle
	res.Popularity = video.ViewCount
	return res, nil
}

func (e *Enricher) enrichSpotify(ctx context.Context, norm mediaid.Normalized, res Result) (Result, error) {
	meta, err := e.fetchSpotifyOEmbed(ctx, norm.CanonicalURL)
	if err != nil {
		return res, err
	}
	res.Title = meta.Title
	res.Attribution = meta.AuthorName
	res.Thumbnail = meta.ThumbnailURL
	return res, nil
}
