// Package auth issues and verifies the HS256 access tokens that bind a
// request to a user and the device it comes from.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the caller identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string
	DeviceID string
}

// Identity is the resolved caller of a request.
type Identity struct {
	UserID   string
	DeviceID string
}

func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:   id.UserID,
		DeviceID: id.DeviceID,
	})

	return token.SignedString(secretKey)
}

func ParseToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, common.ErrTokenExpired
		}
		return Identity{}, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" || claims.DeviceID == "" {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, DeviceID: claims.DeviceID}, nil
}
