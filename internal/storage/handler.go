package storage

import (
	"fmt"
	stdhttp "net/http"
	"path/filepath"
	"strings"

	"github.com/clipfeed/backend/internal/auth"
	"github.com/clipfeed/backend/internal/config"
	httphandler "github.com/clipfeed/backend/internal/http"
	"github.com/clipfeed/backend/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles asset uploads (profile images, video thumbnails)
type Handler struct {
	service  Service
	config   *config.UploadConfig
	response httphandler.ResponseHandler
	logger   logger.Logger
}

// UploadResponse is the body returned after a successful upload
type UploadResponse struct {
	URL string `json:"url"`
}

// NewHandler creates a new upload handler
func NewHandler(service Service, cfg *config.UploadConfig, response httphandler.ResponseHandler, logger logger.Logger) *Handler {
	return &Handler{
		service:  service,
		config:   cfg,
		response: response,
		logger:   logger,
	}
}

// RegisterRoutes registers the upload API routes
func (h *Handler) RegisterRoutes(router *gin.Engine, gate *auth.Gate) {
	protected := router.Group("/uploads")
	protected.Use(auth.RequireAuth(gate))
	{
		protected.POST("", h.HandleUpload)
	}
}

// @Summary Upload an asset
// @Description Uploads an image (profile image or video thumbnail) and
// returns its public URL for use in profileImg/image fields
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file to upload"
// @Success 201 {object} UploadResponse "Upload completed successfully"
// @Failure 400 {object} http.MessageResponse "Missing or invalid file"
// @Failure 500 {object} http.MessageResponse "Upload failed"
// @Router /uploads [post]
func (h *Handler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.response.BadRequest(c, "No file received")
		return
	}
	defer file.Close()

	if err := h.validateUpload(header.Filename, header.Size); err != nil {
		h.response.BadRequest(c, err.Error())
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("uploads/%s%s", uuid.New(), ext)

	url, err := h.service.UploadStream(c.Request.Context(), file, key, header.Header.Get("Content-Type"))
	if err != nil {
		h.response.InternalError(c, "Failed to upload file", err)
		return
	}

	h.logger.LogInfo("Asset uploaded", map[string]interface{}{
		"key":  key,
		"size": header.Size,
	})
	h.response.JSON(c, stdhttp.StatusCreated, UploadResponse{URL: url})
}

// validateUpload checks the file against the configured size and format limits
func (h *Handler) validateUpload(filename string, size int64) error {
	if size > h.config.MaxSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", h.config.MaxSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, format := range h.config.AllowedFormats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported file type: %s. Allowed types: %v", ext, h.config.AllowedFormats)
}
