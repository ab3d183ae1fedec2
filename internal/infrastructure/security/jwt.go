// Package security provides JWT token utilities
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateEditorToken creates a JWT session token for the inline editor.
func GenerateEditorToken(jwtSecret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"role": "editor",
		"type": "editor_auth",
		"iat":  time.Now().UTC().Unix(),
		"exp":  time.Now().UTC().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateEditorToken validates an editor session token and checks its role claim.
func ValidateEditorToken(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	claims, err := ValidateJWT(tokenString, jwtSecret)
	if err != nil {
		return nil, err
	}
	if role, ok := claims["role"].(string); !ok || role != "editor" {
		return nil, errors.New("invalid token role")
	}
	return claims, nil
}
