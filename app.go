package main

import (
	"context"
	"fmt"

	"github.com/clipfeed/backend/internal/auth"
	"github.com/clipfeed/backend/internal/cache"
	"github.com/clipfeed/backend/internal/config"
	"github.com/clipfeed/backend/internal/database"
	httphandler "github.com/clipfeed/backend/internal/http"
	"github.com/clipfeed/backend/internal/logger"
	"github.com/clipfeed/backend/internal/storage"
	s3storage "github.com/clipfeed/backend/internal/storage/s3"
	"github.com/clipfeed/backend/internal/user"
	"github.com/clipfeed/backend/internal/video"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App holds all application dependencies
type App struct {
	ctx       context.Context
	Config    *config.Config
	db        *gorm.DB
	dbService *database.DatabaseService
	cache     cache.Service
	router    *gin.Engine
	logger    logger.Logger

	response httphandler.ResponseHandler
	tokens   auth.TokenService
	gate     *auth.Gate
	users    user.Service
	videos   video.Service
	uploads  storage.Service
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	dbService := database.NewDatabaseService(&cfg.Database, log)
	db, err := dbService.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %v", err)
	}

	// Redis is optional; the user service degrades to uncached reads
	var cacheService cache.Service
	if cfg.Redis.Addr != "" {
		redisService, err := cache.NewRedisService(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.LogWarn("Redis unavailable, profile caching disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			cacheService = redisService
		}
	}

	response := httphandler.NewResponseHandler(log)

	authConfig := &auth.Config{}
	authConfig.JWT.Secret = cfg.Auth.JWT.Secret
	authConfig.JWT.AccessTokenTTL = cfg.Auth.JWT.AccessTokenTTL
	tokens := auth.NewJWTService(authConfig)
	gate := auth.NewGate(tokens)

	videoRepo := video.NewRepository(db)
	videoService := video.NewService(videoRepo, log)

	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo, videoRepo, cacheService, log, cfg.Cache.ProfileTTL)

	s3Service, err := s3storage.NewService(&cfg.Storage.S3, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 service: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	app := &App{
		ctx:       ctx,
		Config:    cfg,
		db:        db,
		dbService: dbService,
		cache:     cacheService,
		router:    router,
		logger:    log,
		response:  response,
		tokens:    tokens,
		gate:      gate,
		users:     userService,
		videos:    videoService,
		uploads:   s3Service,
	}

	SetupRoutes(router, app)

	return app, nil
}

// Run starts the application
func (a *App) Run() error {
	port := a.Config.Server.Port
	a.logger.LogInfo(fmt.Sprintf("Starting server on port %d", port), nil)
	if err := a.router.Run(fmt.Sprintf(":%d", port)); err != nil {
		return a.logger.LogError(err, "server failed to start")
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	a.logger.LogInfo("Initiating graceful shutdown", nil)

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.LogWarn("Error closing cache connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if err := a.dbService.Close(); err != nil {
		a.logger.LogWarn("Error closing database connections", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.logger.LogInfo("Application shutdown complete", nil)
	return nil
}
