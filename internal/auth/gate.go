package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Rejection bodies written by the gate. The missing-header case responds
// with plain text and 403, the bad-token case with a JSON string and 401,
// matching the public API contract.
const (
	msgTokenRequired = "Token required"
	msgInvalidToken  = "Invalid Token"
)

const identityKey = "identity"

// Gate decides whether a request carrying an Authorization header may
// proceed. It is a plain function of the header value so it can be tested
// without HTTP plumbing; RequireAuth adapts it to gin middleware.
type Gate struct {
	tokens TokenService
}

// NewGate creates a new auth gate
func NewGate(tokens TokenService) *Gate {
	return &Gate{tokens: tokens}
}

// Check verifies the bearer token in the given Authorization header value
// and returns either an identity to proceed with or a rejection.
func (g *Gate) Check(authHeader string) GateResult {
	if authHeader == "" {
		return GateResult{Status: http.StatusForbidden, Text: msgTokenRequired}
	}

	// Take whatever follows the scheme; a malformed header yields an empty
	// token and fails verification below.
	var token string
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
		token = parts[1]
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return GateResult{Status: http.StatusUnauthorized, JSON: msgInvalidToken}
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return GateResult{Status: http.StatusUnauthorized, JSON: msgInvalidToken}
	}

	return GateResult{Identity: &Identity{UserID: userID}}
}

// RequireAuth wraps the gate as gin middleware for protected routes
func RequireAuth(gate *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := gate.Check(c.GetHeader("Authorization"))
		if !result.Proceed() {
			if result.Text != "" {
				c.String(result.Status, result.Text)
			} else {
				c.JSON(result.Status, result.JSON)
			}
			c.Abort()
			return
		}

		SetIdentity(c, *result.Identity)
		c.Next()
	}
}

// SetIdentity attaches an authenticated identity to the request context
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
	c.Set("userID", identity.UserID.String())
}

// GetIdentity retrieves the authenticated identity from the request context
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
