package store

import "time"

// MediaKind is the closed set of media sources a track can point at.
type MediaKind string

const (
	MediaKindYouTube MediaKind = "youtube"
	MediaKindSpotify MediaKind = "spotify"
	MediaKindFile    MediaKind = "mp3"
)

// Role is a user's authorization level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Status is a user's account state.
type Status string

const (
	StatusActive Status = "active"
	StatusBanned Status = "banned"
)

// Track is one discography entry. Plays is set by enrichment or manual edit
// and is never negative.
type Track struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Artist   string    `json:"artist"`
	Album    string    `json:"album,omitempty"`
	Kind     MediaKind `json:"type"`
	URL      string    `json:"url"`
	CoverArt string    `json:"coverArt,omitempty"`
	Category string    `json:"category,omitempty"`
	Plays    int64     `json:"plays"`
}

type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Views     int64  `json:"views"`
}

type GalleryItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Featured bool   `json:"featured"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
}

type UserProfile struct {
	ID       string    `json:"uid"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	Status   Status    `json:"status"`
	Cart     []string  `json:"cart,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}

type Socials struct {
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	YouTube   string `json:"youtube"`
}

// Settings is the singleton record of site-wide configuration.
type Settings struct {
	HeroText        string  `json:"heroText"`
	MarqueeText     string  `json:"marqueeText"`
	ContactEmail    string  `json:"contactEmail"`
	BookingEmail    string  `json:"bookingEmail"`
	Socials         Socials `json:"socials"`
	ThemeColor      string  `json:"themeColor"`
	MaintenanceMode bool    `json:"maintenanceMode"`
}

// Notification is one entry in the append-only admin event log.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"date"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []string    `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"date"`
}

type AnalyticsPoint struct {
	Date        string `json:"date"`
	PageViews   int    `json:"pageViews"`
	MusicClicks int    `json:"musicClicks"`
	Purchases   int    `json:"purchases"`
}

// DashboardStats are the computed admin dashboard card values.
type DashboardStats struct {
	TotalUsers   int     `json:"totalUsers"`
	TotalStreams int64   `json:"totalStreams"`
	TotalRevenue float64 `json:"totalRevenue"`
}
