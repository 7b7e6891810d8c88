package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseHandler centralizes response writing so handlers stay focused on
// control flow and internal errors are always logged before being masked.
type ResponseHandler interface {
	JSON(c *gin.Context, status int, payload interface{})
	Message(c *gin.Context, status int, message string)
	NotFound(c *gin.Context, message string)
	Forbidden(c *gin.Context, message string)
	BadRequest(c *gin.Context, message string)
	InternalError(c *gin.Context, message string, err error)
}

// Logger defines the logging interface used when writing error responses
type Logger interface {
	LogError(err error, msg string) error
}

type responseHandler struct {
	logger Logger
}

// NewResponseHandler creates a new instance of ResponseHandler
func NewResponseHandler(logger Logger) ResponseHandler {
	return &responseHandler{
		logger: logger,
	}
}

// JSON writes an arbitrary payload with the given status code
func (h *responseHandler) JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Message writes a message-only body with the given status code
func (h *responseHandler) Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// NotFound writes a not found response
func (h *responseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: message})
}

// Forbidden writes a forbidden response
func (h *responseHandler) Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, MessageResponse{Message: message})
}

// BadRequest writes a validation error response
func (h *responseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}

// InternalError logs the underlying error and writes a generic message.
// The error detail never reaches the client.
func (h *responseHandler) InternalError(c *gin.Context, message string, err error) {
	if err != nil {
		h.logger.LogError(err, message)
	}
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: message})
}
