package user

import (
	"errors"
	stdhttp "net/http"

	"github.com/clipfeed/backend/internal/auth"
	httphandler "github.com/clipfeed/backend/internal/http"
	"github.com/clipfeed/backend/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for user endpoints
type Handler struct {
	service  Service
	tokens   auth.TokenService
	response httphandler.ResponseHandler
	logger   logger.Logger
}

// NewHandler creates a new user handler
func NewHandler(service Service, tokens auth.TokenService, response httphandler.ResponseHandler, logger logger.Logger) *Handler {
	return &Handler{
		service:  service,
		tokens:   tokens,
		response: response,
		logger:   logger,
	}
}

// RegisterRoutes registers the user API routes
func (h *Handler) RegisterRoutes(router *gin.Engine, gate *auth.Gate) {
	// Public routes
	router.POST("/users", h.HandleCreateUser)
	router.GET("/users", h.HandleIsExist)
	router.GET("/users/:id", h.HandleGetUser)
	router.POST("/login", h.HandleLogin)

	// Protected routes: a caller may only update or delete themself
	protected := router.Group("/users/me")
	protected.Use(auth.RequireAuth(gate))
	{
		protected.PATCH("", h.HandleUpdateUser)
		protected.DELETE("", h.HandleDeleteUser)
	}
}

// @Summary Register a new user
// @Description Creates a new account with a unique username
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} http.MessageResponse "User created successfully"
// @Failure 400 {object} http.MessageResponse "Username already taken"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users [post]
func (h *Handler) HandleCreateUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			h.response.BadRequest(c, "Username already taken")
			return
		}
		h.response.InternalError(c, "Error creating user", err)
		return
	}

	h.response.Message(c, stdhttp.StatusCreated, "User created successfully")
}

// @Summary Get a user's public profile
// @Description Retrieves the public fields of a user: display name, profile
// image and video id list. Credentials are never returned.
// @Tags user
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Profile "Profile retrieved successfully"
// @Failure 404 {object} http.MessageResponse "User not found"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users/{id} [get]
func (h *Handler) HandleGetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.BadRequest(c, "Invalid user ID")
		return
	}

	profile, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			h.response.NotFound(c, "User not found")
			return
		}
		h.response.InternalError(c, "Internal server error", err)
		return
	}

	h.response.JSON(c, stdhttp.StatusOK, profile)
}

// @Summary Check whether a username exists
// @Description Reports whether the given username is already registered
// @Tags user
// @Produce json
// @Param username query string true "Username to check"
// @Success 201 {object} http.ExistsResponse "Existence check result"
// @Failure 400 {object} http.MessageResponse "Missing username parameter"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users [get]
func (h *Handler) HandleIsExist(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		h.response.BadRequest(c, "Username query parameter is required.")
		return
	}

	exists, err := h.service.Exists(c.Request.Context(), username)
	if err != nil {
		h.response.InternalError(c, "Internal server error", err)
		return
	}

	// 201 for a read is part of the public contract.
	h.response.JSON(c, stdhttp.StatusCreated, httphandler.ExistsResponse{Exists: exists})
}

// @Summary Log in
// @Description Authenticates a user and issues an access token. Failure is
// reported in-body with HTTP 200, not via status code.
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginSuccessResponse "Login result"
// @Router /login [post]
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.JSON(c, stdhttp.StatusOK, LoginFailureResponse{
			Result: httphandler.LoginResultFailure,
			Reason: "Invalid username or password",
		})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			h.logger.LogError(err, "Login failed")
		}
		h.response.JSON(c, stdhttp.StatusOK, LoginFailureResponse{
			Result: httphandler.LoginResultFailure,
			Reason: "Invalid username or password",
		})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		h.response.InternalError(c, "Internal server error", err)
		return
	}

	h.response.JSON(c, stdhttp.StatusOK, LoginSuccessResponse{
		Result: httphandler.LoginResultSuccess,
		Token:  token,
		User: LoginUser{
			Displayname: user.Displayname,
			ProfileImg:  user.ProfileImg,
		},
	})
}

// @Summary Update the authenticated user
// @Description Applies a partial update to the caller's own profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateRequest true "Fields to update"
// @Success 201 {object} UpdateResponse "User updated successfully"
// @Failure 404 {object} http.MessageResponse "User not found"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users/me [patch]
func (h *Handler) HandleUpdateUser(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		h.response.Message(c, stdhttp.StatusUnauthorized, "User not authenticated")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.Update(c.Request.Context(), identity.UserID, req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			h.response.NotFound(c, "User not found")
			return
		}
		h.response.InternalError(c, "Internal server error", err)
		return
	}

	h.response.JSON(c, stdhttp.StatusCreated, UpdateResponse{
		Message: "User updated successfully",
		User: UpdatedUser{
			DisplayName: user.Displayname,
			Password:    user.Password,
			ProfilePic:  user.ProfileImg,
		},
	})
}

// @Summary Delete the authenticated user
// @Description Deletes the caller's own account. The account's videos are
// not removed.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} http.MessageResponse "User deleted successfully"
// @Failure 404 {object} http.MessageResponse "User not found"
// @Failure 500 {object} http.MessageResponse "Internal server error"
// @Router /users/me [delete]
func (h *Handler) HandleDeleteUser(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		h.response.Message(c, stdhttp.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.UserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			h.response.NotFound(c, "User not found")
			return
		}
		h.response.InternalError(c, "Internal server error", err)
		return
	}

	h.response.Message(c, stdhttp.StatusOK, "User deleted successfully")
}
