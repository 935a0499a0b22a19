package store

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var categoryCaser = cases.Title(language.AmericanEnglish)

// AddTrackParams carries the operator-supplied fields for a new track.
// The identifier and play count are assigned by the store.
type AddTrackParams struct {
	Title    string    `validate:"required"`
	Artist   string    `validate:"required"`
	Album    string
	Kind     MediaKind `validate:"required,oneof=youtube spotify mp3"`
	URL      string    `validate:"required,url"`
	CoverArt string
	Category string
}

// Music returns the track collection. Unrestricted read.
func (s *Store) Music(ctx context.Context) []Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Track, len(s.tracks))
	copy(out, s.tracks)
	return out
}

// AddTrack appends a track with a fresh unique identifier and a zero play
// count; plays are only ever set afterwards via UpdateTrackPlays.
func (s *Store) AddTrack(ctx context.Context, params AddTrackParams) (Track, error) {
	if err := s.checkInput(params); err != nil {
		return Track{}, err
	}

	track := Track{
		ID:       newID("t"),
		Title:    params.Title,
		Artist:   params.Artist,
		Album:    params.Album,
		Kind:     params.Kind,
		URL:      params.URL,
		CoverArt: params.CoverArt,
		Category: categoryCaser.String(params.Category),
		Plays:    0,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracks = append(s.tracks, track)
	return track, nil
}

func (s *Store) DeleteTrack(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tracks {
		if s.tracks[i].ID == id {
			s.tracks = append(s.tracks[:i], s.tracks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UpdateTrackPlays sets a track's play count from enrichment or a manual
// edit. Negative counts violate the invariant and are rejected.
func (s *Store) UpdateTrackPlays(ctx context.Context, id string, plays int64) error {
	if plays < 0 {
		return fmt.Errorf("%w: play count must not be negative", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tracks {
		if s.tracks[i].ID == id {
			s.tracks[i].Plays = plays
			return nil
		}
	}
	return ErrNotFound
}

type AddVideoParams struct {
	Title     string `validate:"required"`
	URL       string `validate:"required,url"`
	Thumbnail string
	Views     int64 `validate:"gte=0"`
}

func (s *Store) Videos(ctx context.Context) []Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Video, len(s.videos))
	copy(out, s.videos)
	return out
}

func (s *Store) AddVideo(ctx context.Context, params AddVideoParams) (Video, error) {
	if err := s.checkInput(params); err != nil {
		return Video{}, err
	}

	video := Video{
		ID:        newID("v"),
		Title:     params.Title,
		URL:       params.URL,
		Thumbnail: params.Thumbnail,
		Views:     params.Views,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = append(s.videos, video)
	return video, nil
}

func (s *Store) DeleteVideo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == id {
			s.videos = append(s.videos[:i], s.videos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type AddGalleryItemParams struct {
	Title    string `validate:"required"`
	URL      string `validate:"required,url"`
	Featured bool
}

func (s *Store) Gallery(ctx context.Context) []GalleryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]GalleryItem, len(s.gallery))
	copy(out, s.gallery)
	return out
}

func (s *Store) AddGalleryItem(ctx context.Context, params AddGalleryItemParams) (GalleryItem, error) {
	if err := s.checkInput(params); err != nil {
		return GalleryItem{}, err
	}

	item := GalleryItem{
		ID:       newID("g"),
		Title:    params.Title,
		URL:      params.URL,
		Featured: params.Featured,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gallery = append(s.gallery, item)
	return item, nil
}

func (s *Store) DeleteGalleryItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.gallery {
		if s.gallery[i].ID == id {
			s.gallery = append(s.gallery[:i], s.gallery[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AddProductParams enforces the storefront invariants: price and stock are
// never negative, so they can never be displayed as negative either.
type AddProductParams struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	Description string
	ImageURL    string
	Sizes       []string
	Colors      []string
}

func (s *Store) Products(ctx context.Context) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) AddProduct(ctx context.Context, params AddProductParams) (Product, error) {
	if err := s.checkInput(params); err != nil {
		return Product{}, err
	}

	product := Product{
		ID:          newID("p"),
		Name:        params.Name,
		Price:       params.Price,
		Stock:       params.Stock,
		Description: params.Description,
		ImageURL:    params.ImageURL,
		Sizes:       params.Sizes,
		Colors:      params.Colors,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
	return product, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UpdateSettingsParams patches the singleton settings record; nil fields are
// left as they are.
type UpdateSettingsParams struct {
	HeroText        *string
	MarqueeText     *string
	ContactEmail    *string `validate:"omitempty,email"`
	BookingEmail    *string `validate:"omitempty,email"`
	Socials         *Socials
	ThemeColor      *string
	MaintenanceMode *bool
}

func (s *Store) GetSettings(ctx context.Context) Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) UpdateSettings(ctx context.Context, params UpdateSettingsParams) (Settings, error) {
	if err := s.checkInput(params); err != nil {
		return Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if params.HeroText != nil {
		s.settings.HeroText = *params.HeroText
	}
	if params.MarqueeText != nil {
		s.settings.MarqueeText = *params.MarqueeText
	}
	if params.ContactEmail != nil {
		s.settings.ContactEmail = *params.ContactEmail
	}
	if params.BookingEmail != nil {
		s.settings.BookingEmail = *params.BookingEmail
	}
	if params.Socials != nil {
		s.settings.Socials = *params.Socials
	}
	if params.ThemeColor != nil {
		s.settings.ThemeColor = *params.ThemeColor
	}
	if params.MaintenanceMode != nil {
		s.settings.MaintenanceMode = *params.MaintenanceMode
	}
	return s.settings, nil
}
