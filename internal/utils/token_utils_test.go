package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	userID := "user-123"

	token, err := GenerateJWT(userID, secret, time.Hour, "wda-test")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "wda-test", claims.Issuer)
}

func TestParseAndValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-123", "secret-one", time.Hour, "wda-test")
	assert.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret-two")
	assert.Error(t, err, "Token signed with a different secret should be rejected")
}

func TestParseAndValidateJWTExpired(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	token, err := GenerateJWT("user-123", secret, -time.Minute, "wda-test")
	assert.NoError(t, err)

	_, err = ParseAndValidateJWT(token, secret)
	assert.Error(t, err, "Expired token should be rejected")
}
