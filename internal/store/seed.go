package store

// seed loads the launch catalog and the initial admin account. The content
// mirrors what the site shipped with; everything is editable from the admin
// back-office afterwards.
func (s *Store) seed(adminEmail string) {
	if adminEmail == "" {
		adminEmail = "admin@chuma.band"
	}

	s.users = []UserProfile{{
		ID:       "u_admin_001",
		Name:     "Admin User",
		Email:    adminEmail,
		Role:     RoleAdmin,
		Status:   StatusActive,
		JoinedAt: s.now(),
	}}

	s.tracks = []Track{
		{
			ID: "t_m1", Title: "City Boys", Artist: "Burna Boy", Album: "I Told Them",
			Kind: MediaKindYouTube, URL: "https://www.youtube.com/watch?v=PhvDRYT81Gk",
			CoverArt: "https://img.youtube.com/vi/PhvDRYT81Gk/maxresdefault.jpg",
			Category: "Afrobeat", Plays: 75430210,
		},
		{
			ID: "t_m2", Title: "This Is Nigeria", Artist: "Falz", Album: "Moral Instruction",
			Kind: MediaKindYouTube, URL: "https://www.youtube.com/watch?v=6gzp9_FE_Qs",
			CoverArt: "https://img.youtube.com/vi/6gzp9_FE_Qs/maxresdefault.jpg",
			Category: "Afrobeat", Plays: 26100500,
		},
		{
			ID: "t_m3", Title: "Unavailable", Artist: "Davido", Album: "Timeless",
			Kind: MediaKindYouTube, URL: "https://www.youtube.com/watch?v=syu-DjNbEQA",
			CoverArt: "https://img.youtube.com/vi/syu-DjNbEQA/maxresdefault.jpg",
			Category: "Afrobeat", Plays: 125800900,
		},
		{
			ID: "t_m4", Title: "Calm Down", Artist: "Rema", Album: "Rave & Roses",
			Kind: MediaKindYouTube, URL: "https://www.youtube.com/watch?v=xw0fPz9-g80",
			CoverArt: "https://img.youtube.com/vi/xw0fPz9-g80/maxresdefault.jpg",
			Category: "Afrofusion", Plays: 670500000,
		},
		{
			ID: "t_m5", Title: "Amapiano", Artist: "Asake", Album: "Work of Art",
			Kind: MediaKindYouTube, URL: "https://www.youtube.com/watch?v=ucv-QoQYcCo",
			CoverArt: "https://img.youtube.com/vi/ucv-QoQYcCo/maxresdefault.jpg",
			Category: "Afrohouse", Plays: 62300100,
		},
	}

	s.videos = []Video{
		{
			ID: "v_1", Title: "City Boys (Official Video)",
			URL:       "https://www.youtube.com/watch?v=PhvDRYT81Gk",
			Thumbnail: "https://img.youtube.com/vi/PhvDRYT81Gk/maxresdefault.jpg",
			Views:     75430210,
		},
	}

	s.gallery = []GalleryItem{
		{ID: "g_1", Title: "Live at Afro Nation", URL: "https://images.chuma.band/gallery/afro-nation.jpg", Featured: true},
		{ID: "g_2", Title: "Studio Session", URL: "https://images.chuma.band/gallery/studio.jpg"},
	}

	s.products = []Product{
		{
			ID: "p_1", Name: "CHUMA Tour Tee", Price: 35, Stock: 120,
			Description: "Heavyweight cotton tee from the **world tour** drop.",
			ImageURL:    "https://images.chuma.band/store/tour-tee.jpg",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Gold"},
		},
		{
			ID: "p_2", Name: "Signed Vinyl", Price: 60, Stock: 25,
			Description: "Limited pressing, hand signed.",
			ImageURL:    "https://images.chuma.band/store/vinyl.jpg",
		},
	}

	s.settings = Settings{
		HeroText:     "The Sound & Pulse of Afrobeat & Afrohouse",
		MarqueeText:  "CHUMA — WORLD TOUR — NEW ALBUM OUT NOW —",
		ContactEmail: "contact@chuma.band",
		BookingEmail: "bookings@chuma.band",
		Socials: Socials{
			Instagram: "https://instagram.com/chuma",
			Twitter:   "https://x.com/chuma",
			YouTube:   "https://youtube.com/@chuma",
		},
		ThemeColor: "#E8590C",
	}

	s.analytics = []AnalyticsPoint{
		{Date: "2023-10-01", PageViews: 120, MusicClicks: 45, Purchases: 2},
		{Date: "2023-10-02", PageViews: 150, MusicClicks: 60, Purchases: 5},
		{Date: "2023-10-03", PageViews: 300, MusicClicks: 120, Purchases: 12},
		{Date: "2023-10-04", PageViews: 220, MusicClicks: 90, Purchases: 8},
		{Date: "2023-10-05", PageViews: 400, MusicClicks: 150, Purchases: 20},
	}
}
