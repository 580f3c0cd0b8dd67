package services

import (
	"fmt"
	"time"

	"getapet-backend/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the identity carried by a signed token.
type TokenClaims struct {
	UserID string
	Name   string
}

// TokenService issues and verifies signed identity tokens
type TokenService struct {
	secret     string
	expiryDays int
}

// NewTokenService creates a new token service
func NewTokenService(secret string, expiryDays int) *TokenService {
	return &TokenService{secret: secret, expiryDays: expiryDays}
}

// Issue generates a JWT token carrying the user's id and display name
func (s *TokenService) Issue(userID, name string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"name": name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().AddDate(0, 0, s.expiryDays).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a token and returns the identity it carries
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.ErrInvalidToken
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return nil, apperr.ErrInvalidToken
	}
	name, _ := claims["name"].(string)

	return &TokenClaims{UserID: userID, Name: name}, nil
}
