package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"personacast/internal/config"
	apphttp "personacast/internal/http"
	"personacast/internal/http/handler"
	"personacast/internal/infra/cache"
	"personacast/internal/ratelimit"
	"personacast/internal/repository/postgres"
	"personacast/internal/service"
	"personacast/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()
	defer log.Sync()

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	limiter, closeLimiter := buildLimiter(cfg, log)
	defer closeLimiter()

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	podcastRepo := postgres.NewPodcastRepository(db)
	episodeRepo := postgres.NewEpisodeRepository(db)
	clientRepo := postgres.NewAPIClientRepository(db)
	variableRepo := postgres.NewVariableRepository(db)
	fileRepo := postgres.NewFileRepository(db)
	heroRepo := postgres.NewHeroImageRepository(db)
	menuRepo := postgres.NewMenuItemRepository(db)

	users := service.NewUserService(userRepo)
	accounts := service.NewAccountService(accountRepo)
	podcasts := service.NewPodcastService(podcastRepo)
	episodes := service.NewEpisodeService(episodeRepo, podcastRepo)
	clients := service.NewAPIClientService(clientRepo, cfg.App.APIClientTokenBytes)
	variables := service.NewVariableService(variableRepo)
	files := service.NewFileService(fileRepo, variableRepo, cfg.App.UploadDir, cfg.App.PublicDir, cfg.App.BaseURL)
	heroes := service.NewHeroImageService(heroRepo, fileRepo, podcastRepo, episodeRepo)
	menuItems := service.NewMenuItemService(menuRepo)

	srv := apphttp.NewServer(cfg, log, apphttp.Handlers{
		Health:     handler.NewHealthHandler(db, cfg.App.HealthCheckTimeout),
		Podcasts:   handler.NewPodcastHandler(podcasts, episodes),
		Episodes:   handler.NewEpisodeHandler(episodes),
		Users:      handler.NewUserHandler(users),
		Accounts:   handler.NewAccountHandler(accounts),
		APIClients: handler.NewAPIClientHandler(clients),
		Variables:  handler.NewVariableHandler(variables),
		MenuItems:  handler.NewMenuItemHandler(menuItems),
		Files:      handler.NewFileHandler(files),
		HeroImages: handler.NewHeroImageHandler(heroes),
		Images:     handler.NewImageHandler(cfg.App.ThumbnailMaxWidth),
		RateLimit:  handler.NewRateLimitHandler(limiter, cfg.RateLimit.Token),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
		return srv.Shutdown(context.Background())
	}
}

// buildLimiter prefers the redis fixed-window backend and falls back to
// the in-process token bucket when redis is unreachable.
func buildLimiter(cfg *config.Config, log *zap.Logger) (ratelimit.Limiter, func()) {
	rdb, err := cache.NewRedis(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, using in-memory rate limiter", zap.Error(err))
		limiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window)
		return limiter, func() {}
	}

	limiter := ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window)
	return limiter, func() { rdb.Close() }
}
