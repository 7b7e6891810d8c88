package main

import (
	"github.com/clipfeed/backend/internal/health"
	"github.com/clipfeed/backend/internal/http/middleware"
	"github.com/clipfeed/backend/internal/storage"
	"github.com/clipfeed/backend/internal/user"
	"github.com/clipfeed/backend/internal/video"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(router *gin.Engine, app *App) {
	router.Use(middleware.RequestLoggerMiddleware(app.logger))

	healthHandler := health.NewHandler(app.response)
	healthHandler.RegisterRoutes(router)

	userHandler := user.NewHandler(app.users, app.tokens, app.response, app.logger)
	userHandler.RegisterRoutes(router, app.gate)

	videoHandler := video.NewHandler(app.videos, app.response, app.logger)
	videoHandler.RegisterRoutes(router, app.gate)

	uploadHandler := storage.NewHandler(app.uploads, &app.Config.Storage.Upload, app.response, app.logger)
	uploadHandler.RegisterRoutes(router, app.gate)
}
