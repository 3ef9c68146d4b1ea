package fakeserver

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = []byte("cloudmeet_fake_backend_secret")

type tokenClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// generateToken creates a signed JWT for a user, mirroring the real
// backend's access tokens.
func generateToken(userID int, ttl time.Duration) (string, error) {
	claims := &tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "cloudmeet-fake",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// validateToken parses and validates the signature and expiration of a
// bearer token, returning the user id it was minted for.
func validateToken(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return 0, err
	}
	if claims, ok := token.Claims.(*tokenClaims); ok && token.Valid {
		return claims.UserID, nil
	}
	return 0, jwt.ErrSignatureInvalid
}
