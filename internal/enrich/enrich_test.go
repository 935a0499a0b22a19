package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"chuma.band/site/internal/mediaid"
	"github.com/stretchr/testify/require"
)

const testVideoURL = "https://youtu.be/PhvDRYT81Gk"

func TestEnrich_YouTube_WithCredential(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/youtube/v3/videos", r.URL.Path)
		require.Equal(t, "PhvDRYT81Gk", r.URL.Query().Get("id"))
		require.Equal(t, "snippet,statistics", r.URL.Query().Get("part"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"items":[{"snippet":{"title":"City Boys","channelTitle":"Burna Boy"},"statistics":{"viewCount":"75430210"}}]}`))
	}))
	defer api.Close()

	e := New(WithCredential("test-key"), WithYouTubeAPIBase(api.URL))

	res, err := e.Enrich(context.Background(), testVideoURL, mediaid.PlatformYouTube)
	require.NoError(t, err)
	require.NoError(t, res.Advisory)
	require.Equal(t, "https://www.youtube.com/watch?v=PhvDRYT81Gk", res.CanonicalURL)
	require.Equal(t, "City Boys", res.Title)
	require.Equal(t, "Burna Boy", res.Attribution)
	require.Equal(t, "https://img.youtube.com/vi/PhvDRYT81Gk/maxresdefault.jpg", res.Thumbnail)
	require.Equal(t, int64(75430210), res.Popularity)
}

func TestEnrich_YouTube_UpstreamError_KeepsDerivedFields(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer api.Close()

	e := New(WithCredential("bad-key"), WithYouTubeAPIBase(api.URL))

	res, err := e.Enrich(context.Background(), testVideoURL, mediaid.PlatformYouTube)
	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	require.Equal(t, http.StatusForbidden, upErr.StatusCode)
	require.Equal(t, "API key not valid", upErr.Message)

	// Partial success: normalization and thumbnail survive the failure.
	require.Equal(t, "https://www.youtube.com/watch?v=PhvDRYT81Gk", res.CanonicalURL)
	require.Equal(t, "https://img.youtube.com/vi/PhvDRYT81Gk/maxresdefault.jpg", res.Thumbnail)
}

func TestEnrich_YouTube_NotFound(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer api.Close()

	e := New(WithCredential("test-key"), WithYouTubeAPIBase(api.URL))

	_, err := e.Enrich(context.Background(), testVideoURL, mediaid.PlatformYouTube)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEnrich_YouTube_NoCredential_FallbackAdvisory(t *testing.T) {
	noembed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/embed", r.URL.Path)
		w.Write([]byte(`{"title":"City Boys","author_name":"Burna Boy"}`))
	}))
	defer noembed.Close()

	e := New(WithNoembedBase(noembed.URL))

	res, err := e.Enrich(context.Background(), testVideoURL, mediaid.PlatformYouTube)
	require.NoError(t, err)
	require.ErrorIs(t, res.Advisory, ErrMissingCredential)
	require.Equal(t, "City Boys", res.Title)
	require.Equal(t, "Burna Boy", res.Attribution)
	// Best-effort path never yields popularity.
	require.Zero(t, res.Popularity)
}

func TestEnrich_YouTube_NoCredential_FallbackFailureIsSilent(t *testing.T) {
	noembed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer noembed.Close()

	e := New(WithNoembedBase(noembed.URL))

	res, err := e.Enrich(context.Background(), testVideoURL, mediaid.PlatformYouTube)
	require.NoError(t, err)
	require.ErrorIs(t, res.Advisory, ErrMissingCredential)
	require.Empty(t, res.Title)
	// Deterministic fields are still derived.
	require.Equal(t, "https://img.youtube.com/vi/PhvDRYT81Gk/maxresdefault.jpg", res.Thumbnail)
}

func TestEnrich_InvalidURL(t *testing.T) {
	e := New()

	res, err := e.Enrich(context.Background(), "https://example.com/nope", mediaid.PlatformYouTube)
	require.ErrorIs(t, err, ErrInvalidURL)
	require.Equal(t, Result{}, res)

	res, err = e.Enrich(context.Background(), "https://open.spotify.com/album/xyz", mediaid.PlatformSpotify)
	require.ErrorIs(t, err, ErrInvalidURL)
	require.Equal(t, Result{}, res)
}

func TestEnrich_Spotify(t *testing.T) {
	oembed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oembed", r.URL.Path)
		w.Write([]byte(`{"title":"Calm Down","author_name":"Rema","thumbnail_url":"https://i.scdn.co/image/cover.jpg"}`))
	}))
	defer oembed.Close()

	e := New(WithSpotifyOEmbedBase(oembed.URL))

	res, err := e.Enrich(context.Background(), "https://open.spotify.com/track/0WtM2NBVQNNJLh6scP13H8?si=x", mediaid.PlatformSpotify)
	require.NoError(t, err)
	require.Equal(t, "Calm Down", res.Title)
	require.Equal(t, "Rema", res.Attribution)
	require.Equal(t, "https://i.scdn.co/image/cover.jpg", res.Thumbnail)
}

func TestSetCredential_ConcurrentWithEnrich(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"snippet":{"title":"City Boys","channelTitle":"Burna Boy"},"statistics":{"viewCount":"75430210"}}]}`))
	}))
	defer api.Close()

	e := New(WithCredential("k0"), WithYouTubeAPIBase(api.URL), WithNoembedBase(api.URL))

	// Credential swaps race against in-flight enrichments; run under -race.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			e.SetCredential(fmt.Sprintf("k%d", i))
		}(i)
		go func() {
			defer wg.Done()
			_, err := e.Enrich(context.Background(), testVideoURL, mediaid.PlatformYouTube)
			require.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestEnrich_File_NothingToDerive(t *testing.T) {
	e := New()

	res, err := e.Enrich(context.Background(), "https://cdn.chuma.band/audio/demo.mp3", mediaid.PlatformFile)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.chuma.band/audio/demo.mp3", res.CanonicalURL)
	require.Empty(t, res.Title)
}
