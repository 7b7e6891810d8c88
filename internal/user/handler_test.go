package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipfeed/backend/internal/auth"
	httphandler "github.com/clipfeed/backend/internal/http"
	"github.com/clipfeed/backend/internal/user"
	"github.com/clipfeed/backend/testhelper"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockService is a testify mock of the user.Service interface
type mockService struct {
	mock.Mock
}

func (m *mockService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	args := m.Called(ctx, req)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (*user.Profile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*user.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockService) Login(ctx context.Context, username, password string) (*user.User, error) {
	args := m.Called(ctx, username, password)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req user.UpdateRequest) (*user.User, error) {
	args := m.Called(ctx, id, req)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockTokenService is a testify mock of the auth.TokenService interface
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (*auth.TokenClaims, error) {
	args := m.Called(token)
	if c := args.Get(0); c != nil {
		return c.(*auth.TokenClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

// setupRouter builds a router with the user routes. When identity is
// non-nil, gated routes see that identity instead of going through the gate.
func setupRouter(t *testing.T, service user.Service, tokens auth.TokenService, identity *auth.Identity) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	response := httphandler.NewResponseHandler(testhelper.NopLogger{})
	handler := user.NewHandler(service, tokens, response, testhelper.NopLogger{})

	router := gin.New()
	router.POST("/users", handler.HandleCreateUser)
	router.GET("/users", handler.HandleIsExist)
	router.GET("/users/:id", handler.HandleGetUser)
	router.POST("/login", handler.HandleLogin)

	protected := router.Group("/users/me")
	if identity != nil {
		protected.Use(func(c *gin.Context) {
			auth.SetIdentity(c, *identity)
			c.Next()
		})
	}
	protected.PATCH("", handler.HandleUpdateUser)
	protected.DELETE("", handler.HandleDeleteUser)

	return router
}

func jsonRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleCreateUser_Success(t *testing.T) {
	service := new(mockService)
	service.On("Register", mock.Anything, mock.MatchedBy(func(req user.RegisterRequest) bool {
		return req.Username == "alice" && req.Password == "secret"
	})).Return(&user.User{ID: uuid.New(), Username: "alice"}, nil)

	router := setupRouter(t, service, new(mockTokenService), nil)
	w := jsonRequest(t, router, "POST", "/users", map[string]string{
		"username":    "alice",
		"password":    "secret",
		"gender":      "f",
		"displayname": "Alice",
		"profileImg":  "https://img.example/alice.png",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"User created successfully"}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestHandleCreateUser_DuplicateUsername(t *testing.T) {
	service := new(mockService)
	service.On("Register", mock.Anything, mock.Anything).Return(nil, user.ErrUsernameTaken)

	router := setupRouter(t, service, new(mockTokenService), nil)
	w := jsonRequest(t, router, "POST", "/users", map[string]string{
		"username": "alice",
		"password": "secret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Username already taken"}`, w.Body.String())
}

func TestHandleCreateUser_InternalError(t *testing.T) {
	service := new(mockService)
	service.On("Register", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	router := setupRouter(t, service, new(mockTokenService), nil)
	w := jsonRequest(t, router, "POST", "/users", map[string]string{
		"username": "alice",
		"password": "secret",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error creating user"}`, w.Body.String())
}

func TestHandleGetUser_NotFound(t *testing.T) {
	service := new(mockService)
	service.On("Get", mock.Anything, mock.Anything).Return(nil, user.ErrUserNotFound)

	router := setupRouter(t, service, new(mockTokenService), nil)
	w := jsonRequest(t, router, "GET", "/users/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
}

func TestHandleGetUser_PublicFieldsOnly(t *testing.T) {
	id := uuid.New()
	videoID := uuid.New()
	service := new(mockService)
	service.On("Get", mock.Anything, id).Return(&user.Profile{
		Displayname: "Alice",
		ProfileImg:  "https://img.example/alice.png",
		VideoList:   []uuid.UUID{videoID},
	}, nil)

	router := setupRouter(t, service, new(mockTokenService), nil)
	w := jsonRequest(t, router, "GET", "/users/"+id.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Alice", body["displayname"])
	assert.Equal(t, "https://img.example/alice.png", body["profileImg"])
	assert.Len(t, body["videoList"], 1)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "username")
}

func TestHandleIsExist(t *testing.T) {
	t.Run("missing username parameter", func(t *testing.T) {
		router := setupRouter(t, new(mockService), new(mockTokenService), nil)
		w := jsonRequest(t, router, "GET", "/users", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Username query parameter is required."}`, w.Body.String())
	})

	t.Run("existing username", func(t *testing.T) {
		service := new(mockService)
		service.On("Exists", mock.Anything, "alice").Return(true, nil)

		router := setupRouter(t, service, new(mockTokenService), nil)
		w := jsonRequest(t, router, "GET", "/users?username=alice", nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"exists":true}`, w.Body.String())
	})

	t.Run("unknown username", func(t *testing.T) {
		service := new(mockService)
		service.On("Exists", mock.Anything, "nobody").Return(false, nil)

		router := setupRouter(t, service, new(mockTokenService), nil)
		w := jsonRequest(t, router, "GET", "/users?username=nobody", nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"exists":false}`, w.Body.String())
	})
}

func TestHandleLogin_Success(t *testing.T) {
	id := uuid.New()
	service := new(mockService)
	service.On("Login", mock.Anything, "alice", "secret").Return(&user.User{
		ID:          id,
		Username:    "alice",
		Displayname: "Alice",
		ProfileImg:  "https://img.example/alice.png",
	}, nil)

	tokens := new(mockTokenService)
	tokens.On("Generate", id).Return("signed-token", nil)

	router := setupRouter(t, service, tokens, nil)
	w := jsonRequest(t, router, "POST", "/login", map[string]string{
		"username": "alice",
		"password": "secret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body user.LoginSuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Success", body.Result)
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, "Alice", body.User.Displayname)
	tokens.AssertExpectations(t)
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	service := new(mockService)
	service.On("Login", mock.Anything, "alice", "wrong").Return(nil, user.ErrInvalidCredentials)

	router := setupRouter(t, service, new(mockTokenService), nil)
	w := jsonRequest(t, router, "POST", "/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})

	// Failure is reported in-body, not via status code
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":"Failure","reason":"Invalid username or password"}`, w.Body.String())
}

func TestHandleUpdateUser(t *testing.T) {
	id := uuid.New()
	identity := &auth.Identity{UserID: id}

	t.Run("success", func(t *testing.T) {
		displayname := "New Name"
		service := new(mockService)
		service.On("Update", mock.Anything, id, mock.MatchedBy(func(req user.UpdateRequest) bool {
			return req.Displayname != nil && *req.Displayname == displayname && req.Password == nil
		})).Return(&user.User{
			ID:          id,
			Displayname: displayname,
			Password:    "$2a$10$hash",
			ProfileImg:  "https://img.example/alice.png",
		}, nil)

		router := setupRouter(t, service, new(mockTokenService), identity)
		w := jsonRequest(t, router, "PATCH", "/users/me", map[string]string{
			"displayname": displayname,
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var body user.UpdateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "User updated successfully", body.Message)
		assert.Equal(t, displayname, body.User.DisplayName)
		service.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		service := new(mockService)
		service.On("Update", mock.Anything, id, mock.Anything).Return(nil, user.ErrUserNotFound)

		router := setupRouter(t, service, new(mockTokenService), identity)
		w := jsonRequest(t, router, "PATCH", "/users/me", map[string]string{"displayname": "x"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
	})
}

func TestHandleDeleteUser(t *testing.T) {
	id := uuid.New()
	identity := &auth.Identity{UserID: id}

	t.Run("success", func(t *testing.T) {
		service := new(mockService)
		service.On("Delete", mock.Anything, id).Return(nil)

		router := setupRouter(t, service, new(mockTokenService), identity)
		w := jsonRequest(t, router, "DELETE", "/users/me", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"User deleted successfully"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		service := new(mockService)
		service.On("Delete", mock.Anything, id).Return(user.ErrUserNotFound)

		router := setupRouter(t, service, new(mockTokenService), identity)
		w := jsonRequest(t, router, "DELETE", "/users/me", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
	})
}
