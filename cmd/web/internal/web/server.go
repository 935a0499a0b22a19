package web

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"chuma.band/site/cmd/web/auth"
	"chuma.band/site/cmd/web/handlers/admin"
	authhandlers "chuma.band/site/cmd/web/handlers/auth"
	"chuma.band/site/cmd/web/handlers/content"
	"chuma.band/site/cmd/web/handlers/shop"
	"chuma.band/site/internal/enrich"
	"chuma.band/site/internal/kv"
	"chuma.band/site/internal/store"
)

type Webserver struct {
	*echo.Echo
	sessionManager *auth.SessionManager
	store          *store.Store
	enricher       *enrich.Enricher
	secrets        *kv.Store
}

func NewWebserver(st *store.Store, enricher *enrich.Enricher, secrets *kv.Store, sessionManager *auth.SessionManager) (*Webserver, error) {
	e := echo.New()

	webserver := &Webserver{
		Echo:           e,
		sessionManager: sessionManager,
		store:          st,
		enricher:       enricher,
		secrets:        secrets,
	}

	webserver.registerRoutes()
	webserver.setupMiddleware()

	return webserver, nil
}

func (s *Webserver) setupMiddleware() {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))
}

func (s *Webserver) registerRoutes() {
	// Auth routes
	s.POST("/login", authhandlers.HandleLogin(s.sessionManager, s.store))
	s.POST("/logout", authhandlers.HandleLogout(s.sessionManager, s.store))
	s.GET("/me", authhandlers.HandleMe(s.sessionManager, s.store))

	// Public content
	apiGroup := s.Group("/api")
	apiGroup.GET("/music", content.HandleMusic(s.store))
	apiGroup.GET("/videos", content.HandleVideos(s.store))
	apiGroup.GET("/gallery", content.HandleGallery(s.store))
	apiGroup.GET("/products", content.HandleProducts(s.store))
	apiGroup.GET("/settings", content.HandleSettings(s.store))
	apiGroup.GET("/notifications", content.HandleNotifications(s.store))

	// Storefront (needs a signed-in user; the store enforces it)
	apiGroup.POST("/cart", shop.HandleAddToCart(s.store))
	apiGroup.POST("/checkout", shop.HandleCheckout(s.store))

	// Admin back-office
	adminGroup := s.Group("/api/admin")
	adminGroup.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !s.sessionManager.IsAuthenticated(c.Request()) {
				return c.JSON(401, map[string]string{"message": "unauthorized"})
			}
			// Access level is stored in the session cookie at login time.
			if s.sessionManager.GetAccessLevel(c.Request()) != auth.AccessAdmin {
				return c.JSON(403, map[string]string{"message": "admin access required"})
			}
			return next(c)
		}
	})

	adminGroup.GET("/users", admin.HandleUsersIndex(s.store))
	adminGroup.PUT("/users/:id/status", admin.HandleUserStatus(s.store))
	adminGroup.PUT("/users/:id/role", admin.HandleUserRole(s.store))

	adminGroup.GET("/analytics", admin.HandleAnalytics(s.store))
	adminGroup.GET("/stats", admin.HandleStats(s.store))
	adminGroup.GET("/orders", admin.HandleOrders(s.store))

	adminGroup.POST("/music", admin.HandleTrackCreate(s.store, s.enricher))
	adminGroup.DELETE("/music/:id", admin.HandleTrackDelete(s.store))
	adminGroup.POST("/videos", admin.HandleVideoCreate(s.store, s.enricher))
	adminGroup.DELETE("/videos/:id", admin.HandleVideoDelete(s.store))
	adminGroup.POST("/gallery", admin.HandleGalleryCreate(s.store))
	adminGroup.DELETE("/gallery/:id", admin.HandleGalleryDelete(s.store))
	adminGroup.POST("/products", admin.HandleProductCreate(s.store))
	adminGroup.DELETE("/products/:id", admin.HandleProductDelete(s.store))

	adminGroup.PUT("/settings", admin.HandleSettingsUpdate(s.store))
	adminGroup.PUT("/notifications/:id/read", admin.HandleNotificationRead(s.store))

	adminGroup.POST("/metadata", admin.HandleMetadataPreview(s.enricher))
	adminGroup.PUT("/credential", admin.HandleCredentialUpdate(s.enricher, s.secrets))
	adminGroup.GET("/credential", admin.HandleCredentialStatus(s.secrets))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})
}
