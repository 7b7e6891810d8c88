package health

import (
	stdhttp "net/http"

	httphandler "github.com/clipfeed/backend/internal/http"
	"github.com/gin-gonic/gin"
)

// Handler handles health check endpoints
type Handler struct {
	response httphandler.ResponseHandler
}

// NewHandler creates a new health check handler
func NewHandler(response httphandler.ResponseHandler) *Handler {
	return &Handler{
		response: response,
	}
}

// RegisterRoutes registers the health check route
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.HandleHealthCheck)
}

// @Summary Health check endpoint
// @Description Checks if the API server is running properly
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Health check successful"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	h.response.JSON(c, stdhttp.StatusOK, gin.H{"status": "healthy"})
}
