// File: sportify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportify/config"
	"sportify/database"
	complexRepo "sportify/database/repository/complex"
	draftRepo "sportify/database/repository/draft"
	"sportify/handlers"
	"sportify/middleware"
	"sportify/routes"
	"sportify/services/draft"
	"sportify/services/geo"
	"sportify/services/submission"
	"sportify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	cfg := config.AppConfig

	// Draft snapshots.
	draftTTL := time.Duration(cfg.DraftTTLMinutes) * time.Minute
	var draftStore draftRepo.DraftStore
	switch cfg.DraftStore {
	case "redis":
		if err := utils.InitDraftCache(); err != nil {
			logger.Sugar().Fatalf("main: failed to initialize draft cache: %v", err)
		}
		draftStore = draftRepo.NewRedisDraftStore(utils.DraftCacheClient, draftTTL)
	default:
		draftStore = draftRepo.NewMemoryDraftStore(draftTTL)
	}

	// Province and ward directory.
	geoTTL := time.Duration(cfg.GeoCacheTTLHours) * time.Hour
	var geoCache geo.Cache = geo.NewMemoryCache(geoTTL)
	if cfg.GeoCache == "redis" {
		if err := utils.InitGeoCache(); err != nil {
			logger.Warn("Geo cache unavailable, falling back to memory", zap.Error(err))
		} else {
			geoCache = geo.NewRedisCache(utils.GeoCacheClient, geoTTL, logger)
		}
	}
	geoService := geo.NewService(geo.NewHTTPDirectory(cfg.GeoAPIURL, logger), geoCache, logger)

	// Submission backend.
	var submitter submission.Submitter
	var complexHandler *handlers.ComplexHandler
	switch cfg.SubmitMode {
	case "http":
		if cfg.SubmitURL == "" {
			logger.Fatal("main: SUBMIT_URL is required when SUBMIT_MODE=http")
		}
		timeout := time.Duration(cfg.SubmitTimeoutSeconds) * time.Second
		submitter = submission.NewHTTPSubmitter(cfg.SubmitURL, cfg.SubmitToken, timeout, logger)
	default:
		if err := database.InitDB(logger); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		repo := complexRepo.NewMongoComplexRepo(database.Database())
		if err := complexRepo.EnsureIndexes(context.Background(), repo); err != nil {
			logger.Warn("Failed to ensure complex indexes", zap.Error(err))
		}
		submitter = &submission.StoreSubmitter{Repo: repo, Logger: logger}
		complexHandler = handlers.NewComplexHandler(repo, logger)
	}

	draftService := &draft.DefaultDraftService{
		Store:     draftStore,
		Locations: geoService,
		Submitter: submitter,
		NewID:     utils.NewID,
		Settings: draft.Settings{
			DefaultSlotMinutes: cfg.DefaultSlotMinutes,
			MaxBulkFields:      cfg.MaxBulkFields,
		},
		Logger: logger,
	}

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewDraftHandler(draftService, logger),
		handlers.NewGeoHandler(geoService, logger),
		complexHandler,
		middleware.OperatorAuthMiddleware(logger),
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, middleware.ParseTrustedProxies(cfg.TrustedProxies), logger))

	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}
	utils.CloseCaches()

	logger.Sugar().Info("main: server stopped gracefully")
}
