package video

import (
	"errors"
	stdhttp "net/http"

	"github.com/clipfeed/backend/internal/auth"
	httphandler "github.com/clipfeed/backend/internal/http"
	"github.com/clipfeed/backend/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for video operations
type Handler struct {
	service  Service
	response httphandler.ResponseHandler
	logger   logger.Logger
}

// NewHandler creates a new video handler
func NewHandler(service Service, response httphandler.ResponseHandler, logger logger.Logger) *Handler {
	return &Handler{
		service:  service,
		response: response,
		logger:   logger,
	}
}

// RegisterRoutes registers the video API routes
func (h *Handler) RegisterRoutes(router *gin.Engine, gate *auth.Gate) {
	// Public routes: reads are open to any caller
	router.GET("/users/:id/videos", h.HandleGetUserVideos)
	router.GET("/users/:id/videos/:pid", h.HandleGetVideoOfUser)

	// Protected routes
	protected := router.Group("")
	protected.Use(auth.RequireAuth(gate))
	{
		protected.POST("/videos", h.HandleCreateVideo)
		protected.PATCH("/users/:id/videos/:pid", h.HandleUpdateVideoOfUser)
		protected.DELETE("/users/:id/videos/:pid", h.HandleDeleteVideoOfUser)
	}
}

// @Summary List a user's videos
// @Description Retrieves all videos created by the given user
// @Tags video
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {array} Video "Videos retrieved successfully"
// @Failure 400 {object} http.MessageResponse "Invalid user ID"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users/{id}/videos [get]
func (h *Handler) HandleGetUserVideos(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.BadRequest(c, "Invalid user ID")
		return
	}

	videos, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.response.InternalError(c, "Server error", err)
		return
	}

	h.response.JSON(c, stdhttp.StatusOK, videos)
}

// @Summary Get a single video of a user
// @Description Retrieves one video scoped to its creator. Responds with a
// JSON null body when no such video exists.
// @Tags video
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param pid path string true "Video ID (UUID)"
// @Success 200 {object} Video "Video retrieved successfully"
// @Failure 400 {object} http.MessageResponse "Invalid ID format"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users/{id}/videos/{pid} [get]
func (h *Handler) HandleGetVideoOfUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.BadRequest(c, "Invalid user ID")
		return
	}
	videoID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		h.response.BadRequest(c, "Invalid video ID")
		return
	}

	video, err := h.service.GetByUserAndID(c.Request.Context(), userID, videoID)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			// A missing video is not an error on read; the body is JSON null.
			h.response.JSON(c, stdhttp.StatusOK, nil)
			return
		}
		h.response.InternalError(c, "Failed to fetch video", err)
		return
	}

	h.response.JSON(c, stdhttp.StatusOK, video)
}

// @Summary Update a video
// @Description Applies a partial update to a video. Only the creator may update it.
// @Tags video
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID (UUID)"
// @Param pid path string true "Video ID (UUID)"
// @Success 200 {object} Video "Video updated successfully"
// @Failure 403 {object} http.MessageResponse "Not the creator of this video"
// @Failure 404 {object} http.MessageResponse "Video not found"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users/{id}/videos/{pid} [patch]
func (h *Handler) HandleUpdateVideoOfUser(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		h.response.Message(c, stdhttp.StatusUnauthorized, "User not authenticated")
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.BadRequest(c, "Invalid user ID")
		return
	}
	videoID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		h.response.BadRequest(c, "Invalid video ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.BadRequest(c, "Invalid request body")
		return
	}

	// Verify the video belongs to the caller before writing. The check and
	// the write are separate statements and are not atomic.
	video, err := h.service.GetByUserAndID(c.Request.Context(), userID, videoID)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			h.response.NotFound(c, "Video not found")
			return
		}
		h.response.InternalError(c, "Failed to update video", err)
		return
	}

	if video.CreatedBy != identity.UserID {
		h.response.Forbidden(c, "Unauthorized to update this video")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, videoID, req)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			h.response.NotFound(c, "Video not found")
			return
		}
		h.response.InternalError(c, "Failed to update video", err)
		return
	}

	h.response.JSON(c, stdhttp.StatusOK, updated)
}

// @Summary Delete a video
// @Description Deletes a video. The path user must be the caller and the
// video's creator; both guards are enforced independently.
// @Tags video
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID (UUID)"
// @Param pid path string true "Video ID (UUID)"
// @Success 200 {object} DeleteResponse "Video deleted successfully"
// @Failure 403 {object} http.MessageResponse "Not allowed to delete this video"
// @Failure 404 {object} http.MessageResponse "Video not found"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users/{id}/videos/{pid} [delete]
func (h *Handler) HandleDeleteVideoOfUser(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		h.response.Message(c, stdhttp.StatusUnauthorized, "User not authenticated")
		return
	}

	// Guard 1: the path user must be the caller. Compared as raw strings so
	// a foreign or malformed id is rejected the same way.
	if identity.UserID.String() != c.Param("id") {
		h.response.Forbidden(c, "Unauthorized to delete video from another user")
		return
	}

	videoID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		h.response.BadRequest(c, "Invalid video ID")
		return
	}

	video, err := h.service.GetByUserAndID(c.Request.Context(), identity.UserID, videoID)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			h.response.NotFound(c, "Video not found")
			return
		}
		h.response.InternalError(c, "Failed to delete video", err)
		return
	}

	// Guard 2: the video's creator must be the caller. Kept separate from
	// guard 1; each carries its own error message.
	if video.CreatedBy != identity.UserID {
		h.response.Forbidden(c, "Unauthorized to delete this video")
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.UserID, videoID); err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			h.response.NotFound(c, "Video not found")
			return
		}
		h.response.InternalError(c, "Failed to delete video", err)
		return
	}

	h.response.JSON(c, stdhttp.StatusOK, DeleteResponse{
		Message: "Video successfully deleted",
		VideoID: videoID.String(),
	})
}

// @Summary Create a video
// @Description Creates a new video owned by the authenticated user
// @Tags video
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} Video "Video created successfully"
// @Failure 400 {object} http.MessageResponse "Missing required video fields"
// @Failure 500 {object} CreateErrorResponse "Internal server error"
// @Router /videos [post]
func (h *Handler) HandleCreateVideo(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		h.response.Message(c, stdhttp.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.HasRequiredFields() {
		h.response.BadRequest(c, "Missing required video fields")
		return
	}

	video, err := h.service.Create(c.Request.Context(), req, identity.UserID)
	if err != nil {
		h.logger.LogError(err, "Failed to create video")
		h.response.JSON(c, stdhttp.StatusInternalServerError, CreateErrorResponse{
			Message: "Failed to create video",
			Error:   err.Error(),
		})
		return
	}

	h.response.JSON(c, stdhttp.StatusCreated, video)
}
