package mediaid

import (
	"errors"
	"net/url"
	"strings"
)

// Platform identifies the media source a URL points at.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformSpotify Platform = "spotify"
	PlatformFile    Platform = "file"
)

var (
	ErrNoVideoID = errors.New("not a youtube url or video id not found")
	ErrNoTrackID = errors.New("not a spotify track url")
)

// videoIDLength is the fixed length of a YouTube video identifier. A capture
// of any other length means we matched something that is not a video link.
const videoIDLength = 11

// Normalized is the stable storage form of a media link.
type Normalized struct {
	// CanonicalURL is the rewritten platform-standard URL. On a failed
	// normalization it carries the input unchanged.
	CanonicalURL string
	// ID is the platform identifier, empty when none could be extracted.
	ID string
}

// Normalize rewrites a user-provided media URL into its canonical form and
// extracts the platform identifier. Pure string transformation; idempotent.
func Normalize(raw string, p Platform) (Normalized, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Normalized{}, errors.New("missing url")
	}

	switch p {
	case PlatformYouTube:
		id, err := ExtractYouTubeVideoID(raw)
		if err != nil {
			return Normalized{CanonicalURL: raw}, err
		}
		return Normalized{
			CanonicalURL: "https://www.youtube.com/watch?v=" + url.QueryEscape(id),
			ID:           id,
		}, nil
	case PlatformSpotify:
		id, err := ExtractSpotifyTrackID(raw)
		if err != nil {
			return Normalized{CanonicalURL: raw}, err
		}
		return Normalized{
			CanonicalURL: "https://open.spotify.com/embed/track/" + url.PathEscape(id) + "?utm_source=generator&theme=0",
			ID:           id,
		}, nil
	case PlatformFile:
		// Direct audio files have no platform identifier.
		return Normalized{CanonicalURL: raw}, nil
	default:
		return Normalized{CanonicalURL: raw}, errors.New("unknown platform")
	}
}

// ThumbnailURL returns the maximum-resolution thumbnail for a YouTube video.
// Derivable from the identifier alone; no network round-trip.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + url.PathEscape(videoID) + "/maxresdefault.jpg"
}

// ExtractYouTubeVideoID extracts the YouTube video ID from a URL.
//
// Tolerated shapes: youtu.be shortlinks, /embed/, /v/, /shorts/, /live/ paths
// and watch?v= query forms. The extracted segment must be exactly 11
// identifier characters, otherwise ErrNoVideoID is returned.
func ExtractYouTubeVideoID(urlStr string) (string, error) {
	urlStr = strings.TrimSpace(urlStr)
	if urlStr == "" {
		return "", errors.New("empty url")
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" {
		// Best effort: treat as https.
		u, err = url.Parse("https://" + urlStr)
		if err != nil {
			return "", err
		}
	}

	host := normalizeHost(u.Host)

	// Handle youtu.be shortlinks
	if host == "youtu.be" {
		return validVideoID(firstPathSegment(u.Path))
	}

	if strings.Contains(host, "youtube.com") {
		// Check for /watch?v= format
		if q := u.Query().Get("v"); q != "" {
			return validVideoID(q)
		}
		for _, prefix := range []string{"/embed/", "/v/", "/shorts/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				if id := firstPathSegment(strings.TrimPrefix(u.Path, prefix)); id != "" {
					return validVideoID(id)
				}
			}
		}
	}

	return "", ErrNoVideoID
}

// ExtractSpotifyTrackID extracts the track ID from a Spotify track URL by
// splitting on the fixed "track/" path marker. The ID is whatever precedes
// the query string.
func ExtractSpotifyTrackID(urlStr string) (string, error) {
	urlStr = strings.TrimSpace(urlStr)
	_, rest, found := strings.Cut(urlStr, "track/")
	if !found {
		return "", ErrNoTrackID
	}
	id, _, _ := strings.Cut(rest, "?")
	id, _, _ = strings.Cut(id, "/")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrNoTrackID
	}
	return id, nil
}

func validVideoID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if len(id) != videoIDLength {
		return "", ErrNoVideoID
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return "", ErrNoVideoID
		}
	}
	return id, nil
}

func normalizeHost(hostport string) string {
	h := strings.TrimSpace(strings.ToLower(hostport))
	if h == "" {
		return ""
	}
	// url.URL.Host may include port.
	if strings.Contains(h, ":") {
		if parsed, err := url.Parse("//" + h); err == nil {
			if parsed.Hostname() != "" {
				h = parsed.Hostname()
			}
		}
	}
	return strings.TrimSuffix(h, ".")
}

func firstPathSegment(p string) string {
	p = strings.TrimPrefix(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	seg, _, _ := strings.Cut(p, "/")
	return strings.TrimSpace(seg)
}
