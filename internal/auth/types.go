package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config represents authentication configuration
type Config struct {
	JWT struct {
		Secret         string
		AccessTokenTTL time.Duration
	}
}

// TokenClaims represents the JWT claims carried by access tokens
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller attached to a request by the gate.
// It lives for a single request and is never shared across requests.
type Identity struct {
	UserID uuid.UUID
}

// GateResult is the outcome of an auth gate check: either the request may
// proceed with an identity, or it is rejected with a status and body.
type GateResult struct {
	Identity *Identity
	Status   int
	Text     string      // plain-text rejection body
	JSON     interface{} // JSON rejection body
}

// Proceed reports whether the request may continue to the handler
func (r GateResult) Proceed() bool {
	return r.Identity != nil
}
