package auth_test

import (
	"testing"
	"time"

	"github.com/clipfeed/backend/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string, ttl time.Duration) *auth.Config {
	config := &auth.Config{}
	config.JWT.Secret = secret
	config.JWT.AccessTokenTTL = ttl
	return config
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	service := auth.NewJWTService(testConfig("test-secret-key", time.Hour))
	userID := uuid.New()

	token, err := service.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	service := auth.NewJWTService(testConfig("test-secret-key", -time.Minute))

	token, err := service.Generate(uuid.New())
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer := auth.NewJWTService(testConfig("secret-one", time.Hour))
	verifier := auth.NewJWTService(testConfig("secret-two", time.Hour))

	token, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyGarbage(t *testing.T) {
	service := auth.NewJWTService(testConfig("test-secret-key", time.Hour))

	_, err := service.Verify("not-a-token")
	assert.Error(t, err)

	_, err = service.Verify("")
	assert.Error(t, err)
}
