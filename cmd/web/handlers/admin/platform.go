package admin

import (
	"chuma.band/site/internal/mediaid"
	"chuma.band/site/internal/store"
)

// platformForKind maps a stored media kind onto the URL normalizer's
// platform set. Uploaded mp3 files carry their URL through untouched.
func platformForKind(kind store.MediaKind) mediaid.Platform {
	switch kind {
	case store.MediaKindYouTube:
		return mediaid.PlatformYouTube
	case store.MediaKindSpotify:
		return mediaid.PlatformSpotify
	default:
		return mediaid.PlatformFile
	}
}
