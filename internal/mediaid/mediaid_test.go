package mediaid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractYouTubeVideoID_AllShapes(t *testing.T) {
	inputs := []string{
		"https://www.youtube.com/watch?v=PhvDRYT81Gk",
		"https://youtube.com/watch?v=PhvDRYT81Gk&t=123s&si=abc",
		"https://m.youtube.com/watch?v=PhvDRYT81Gk",
		"youtu.be/PhvDRYT81Gk",
		"https://youtu.be/PhvDRYT81Gk?t=120",
		"https://www.youtube.com/embed/PhvDRYT81Gk",
		"https://www.youtube.com/v/PhvDRYT81Gk",
		"https://youtube.com/shorts/PhvDRYT81Gk?feature=share",
		"https://youtube.com/live/PhvDRYT81Gk",
	}
	for _, in := range inputs {
		id, err := ExtractYouTubeVideoID(in)
		require.NoError(t, err, in)
		require.Equal(t, "PhvDRYT81Gk", id, in)
	}
}

func TestExtractYouTubeVideoID_RejectsWrongLength(t *testing.T) {
	for _, in := range []string{
		"https://www.youtube.com/watch?v=short",
		"https://youtu.be/waytoolongtobeavideoid",
		"https://www.youtube.com/embed/PhvDRYT81GkX",
	} {
		_, err := ExtractYouTubeVideoID(in)
		require.ErrorIs(t, err, ErrNoVideoID, in)
	}
}

func TestExtractYouTubeVideoID_NotYouTube(t *testing.T) {
	_, err := ExtractYouTubeVideoID("https://vimeo.com/123456789")
	require.ErrorIs(t, err, ErrNoVideoID)
}

func TestNormalize_YouTube_Canonical(t *testing.T) {
	for _, in := range []string{
		"youtu.be/PhvDRYT81Gk?t=120",
		"https://www.youtube.com/watch?v=PhvDRYT81Gk&list=PLx",
		"https://youtube.com/shorts/PhvDRYT81Gk",
	} {
		n, err := Normalize(in, PlatformYouTube)
		require.NoError(t, err, in)
		require.Equal(t, "https://www.youtube.com/watch?v=PhvDRYT81Gk", n.CanonicalURL, in)
		require.Equal(t, "PhvDRYT81Gk", n.ID, in)
	}
}

func TestNormalize_YouTube_Idempotent(t *testing.T) {
	first, err := Normalize("https://youtu.be/PhvDRYT81Gk", PlatformYouTube)
	require.NoError(t, err)

	second, err := Normalize(first.CanonicalURL, PlatformYouTube)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNormalize_YouTube_FailureLeavesInputUnchanged(t *testing.T) {
	in := "https://example.com/not-a-video"
	n, err := Normalize(in, PlatformYouTube)
	require.ErrorIs(t, err, ErrNoVideoID)
	require.Equal(t, in, n.CanonicalURL)
	require.Empty(t, n.ID)
}

func TestNormalize_Spotify(t *testing.T) {
	n, err := Normalize("https://open.spotify.com/track/4uUG5RXrOk84mYEfFvj3cK?si=abc123", PlatformSpotify)
	require.NoError(t, err)
	require.Equal(t, "4uUG5RXrOk84mYEfFvj3cK", n.ID)
	require.Equal(t, "https://open.spotify.com/embed/track/4uUG5RXrOk84mYEfFvj3cK?utm_source=generator&theme=0", n.CanonicalURL)

	// Already-canonical embed URLs normalize to themselves.
	again, err := Normalize(n.CanonicalURL, PlatformSpotify)
	require.NoError(t, err)
	require.Equal(t, n, again)
}

func TestNormalize_Spotify_NoMarker(t *testing.T) {
	in := "https://open.spotify.com/album/2noRn2Aes5aoNVsU6iWThc"
	n, err := Normalize(in, PlatformSpotify)
	require.ErrorIs(t, err, ErrNoTrackID)
	require.Equal(t, in, n.CanonicalURL)
}

func TestNormalize_File_PassThrough(t *testing.T) {
	in := "https://cdn.chuma.band/audio/demo.mp3"
	n, err := Normalize(in, PlatformFile)
	require.NoError(t, err)
	require.Equal(t, in, n.CanonicalURL)
	require.Empty(t, n.ID)
}

func TestThumbnailURL(t *testing.T) {
	require.Equal(t,
		"https://img.youtube.com/vi/PhvDRYT81Gk/maxresdefault.jpg",
		ThumbnailURL("PhvDRYT81Gk"))
}
