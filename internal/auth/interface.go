package auth

import "github.com/google/uuid"

// TokenService handles access token issuance and verification
type TokenService interface {
	Generate(userID uuid.UUID) (string, error)
	Verify(token string) (*TokenClaims, error)
}
