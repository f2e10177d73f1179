package utils

import (
	"testing"
	"time"

	"github.com/Tanmandal/Short-URL/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func setupTokenConfig() {
	config.AppConfig = &config.Config{
		SecretKey:   "test_secret_key_12345",
		TokenExpire: 5,
	}
}

func TestToken_RoundTrip(t *testing.T) {
	setupTokenConfig()

	token, err := GenerateToken("link-id-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "link-id-123", claims.LinkID)
}

func TestToken_Expired(t *testing.T) {
	setupTokenConfig()

	expired := &Claims{
		LinkID: "link-id-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-10 * time.Minute)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).
		SignedString([]byte(config.AppConfig.SecretKey))
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestToken_WrongSecret(t *testing.T) {
	setupTokenConfig()

	token, err := GenerateToken("link-id-123")
	assert.NoError(t, err)

	config.AppConfig.SecretKey = "a_different_secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestToken_Malformed(t *testing.T) {
	setupTokenConfig()

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}
