// Package http assembles the echo application: middleware chain,
// route table, and the central error handler.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"personacast/internal/config"
	"personacast/internal/domain/user"
	"personacast/internal/http/handler"
	"personacast/internal/http/middleware"
	"personacast/pkg/logger"
)

const readHeaderTimeout = 10 * time.Second

// Handlers carries every route handler the server mounts.
type Handlers struct {
	Health     *handler.HealthHandler
	Podcasts   *handler.PodcastHandler
	Episodes   *handler.EpisodeHandler
	Users      *handler.UserHandler
	Accounts   *handler.AccountHandler
	APIClients *handler.APIClientHandler
	Variables  *handler.VariableHandler
	MenuItems  *handler.MenuItemHandler
	Files      *handler.FileHandler
	HeroImages *handler.HeroImageHandler
	Images     *handler.ImageHandler
	RateLimit  *handler.RateLimitHandler
}

type Server struct {
	echo *echo.Echo
	cfg  *config.Config
	log  *zap.Logger
}

func NewServer(cfg *config.Config, log *zap.Logger, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	session := middleware.NewSession(cfg.Session.Secret)

	e.Use(middleware.RequestID())
	e.Use(logger.Middleware(log))
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit("50M"))
	e.Use(middleware.Metrics())
	e.Use(session.Middleware())

	if cfg.RateLimit.Enabled {
		gatekeeper := middleware.NewGatekeeper(cfg.RateLimit.CheckURL, cfg.RateLimit.Token, []string{
			"/internal",
			"/api/health",
			"/metrics",
			"/uploads",
		})
		e.Use(gatekeeper.Middleware())
	}

	registerRoutes(e, session, h, cfg)

	return &Server{echo: e, cfg: cfg, log: log}
}

func registerRoutes(e *echo.Echo, session *middleware.Session, h Handlers, cfg *config.Config) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/uploads", cfg.App.UploadDir)

	internal := e.Group("/internal")
	internal.POST("/ratelimit/check", h.RateLimit.Check)

	api := e.Group("/api")
	api.GET("/health", h.Health.Check)
	api.POST("/image", h.Images.Thumbnail)

	editor := session.RequireRole(user.RoleEditor)
	admin := session.RequireRole(user.RoleAdmin)

	// Podcasts. Reads are public; writes need an editor.
	podcasts := api.Group("/podcasts")
	podcasts.GET("", h.Podcasts.List)
	podcasts.POST("", h.Podcasts.Create, editor)
	podcasts.GET("/check-slug", h.Podcasts.CheckSlug)
	podcasts.GET("/:idOrSlug", h.Podcasts.Get)
	podcasts.PUT("/:idOrSlug", h.Podcasts.Update, editor)
	podcasts.DELETE("/:idOrSlug", h.Podcasts.Delete, editor)
	podcasts.POST("/:idOrSlug/publish", h.Podcasts.Publish, editor)
	podcasts.POST("/:idOrSlug/unpublish", h.Podcasts.Unpublish, editor)
	podcasts.GET("/:idOrSlug/episodes", h.Podcasts.ListEpisodes)
	podcasts.GET("/:idOrSlug/hero", h.HeroImages.ForPodcast)
	podcasts.GET("/:idOrSlug/episodes/:episodeSlug/hero", h.HeroImages.ForEpisode)

	episodes := api.Group("/episodes")
	episodes.GET("", h.Episodes.List)
	episodes.POST("", h.Episodes.Create, editor)
	episodes.GET("/:id", h.Episodes.Get)
	episodes.PUT("/:id", h.Episodes.Update, editor)
	episodes.DELETE("/:id", h.Episodes.Delete, editor)
	episodes.POST("/:id/publish", h.Episodes.Publish, editor)
	episodes.POST("/:id/unpublish", h.Episodes.Unpublish, editor)

	users := api.Group("/users", admin)
	users.GET("", h.Users.List)
	users.POST("", h.Users.Create)
	users.GET("/:id", h.Users.Get)
	users.PUT("/:id", h.Users.Update)
	users.DELETE("/:id", h.Users.Delete)
	users.POST("/:id/toggle-active", h.Users.ToggleActive)
	users.PUT("/:id/role", h.Users.UpdateRole)

	accounts := api.Group("/accounts", admin)
	accounts.GET("", h.Accounts.List)
	accounts.POST("", h.Accounts.Create)
	accounts.GET("/:id", h.Accounts.Get)
	accounts.PUT("/:id", h.Accounts.Update)
	accounts.DELETE("/:id", h.Accounts.Delete)

	clients := api.Group("/api-clients", admin)
	clients.GET("", h.APIClients.List)
	clients.POST("", h.APIClients.Create)
	clients.GET("/:id", h.APIClients.Get)
	clients.PUT("/:id", h.APIClients.Update)
	clients.DELETE("/:id", h.APIClients.Delete)

	variables := api.Group("/variables")
	variables.GET("/named/:name", h.Variables.Value)
	variables.GET("", h.Variables.List, admin)
	variables.POST("", h.Variables.Create, admin)
	variables.GET("/by-name/:name", h.Variables.GetByName, admin)
	variables.GET("/:id", h.Variables.Get, admin)
	variables.PATCH("/:id", h.Variables.Update, admin)
	variables.DELETE("/:id", h.Variables.Delete, admin)

	menu := api.Group("/menu-items")
	menu.GET("", h.MenuItems.List)
	menu.POST("", h.MenuItems.Create, admin)
	menu.POST("/reorder", h.MenuItems.Reorder, admin)
	menu.GET("/:id", h.MenuItems.Get)
	menu.PUT("/:id", h.MenuItems.Update, admin)
	menu.DELETE("/:id", h.MenuItems.Delete, admin)

	files := api.Group("/files", admin)
	files.GET("", h.Files.List)
	files.POST("/upload", h.Files.Upload)
	files.GET("/hero", h.HeroImages.List)
	files.POST("/hero", h.HeroImages.Create)
	files.GET("/hero/:id", h.HeroImages.Get)
	files.PUT("/hero/:id", h.HeroImages.Update)
	files.DELETE("/hero/:id", h.HeroImages.Delete)
	files.GET("/:id", h.Files.Get)
	files.DELETE("/:id", h.Files.Delete)

	api.POST("/favicon/sync", h.Files.FaviconSync, admin)
}

// Echo exposes the underlying router, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start() error {
	s.echo.Server.ReadHeaderTimeout = readHeaderTimeout
	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	addr := ":" + s.cfg.Server.Port
	s.log.Info("server listening", zap.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(ctx)
}
