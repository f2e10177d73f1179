package utils

import (
	"errors"
	"time"

	"github.com/Tanmandal/Short-URL/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carry the store-assigned internal id of a link, never the public
// code. A deleted link leaves the id dangling, which invalidates every
// outstanding token for it without a revocation list.
type Claims struct {
	LinkID string `json:"link_id"`
	jwt.RegisteredClaims
}

func GenerateToken(linkID string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(config.AppConfig.TokenExpire) * time.Minute)

	claims := &Claims{
		LinkID: linkID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "short-url",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.AppConfig.SecretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
