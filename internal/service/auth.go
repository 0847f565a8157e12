package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"soundspace/internal/config"
	"soundspace/internal/model"
)

// AuthService issues and validates JWT access tokens. Tokens carry the user
// ID and admin flag; everything else is looked up per-request.
type AuthService struct {
	config *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{config: cfg}
}

// GenerateAccessToken issues a signed token for the user.
func (s *AuthService) GenerateAccessToken(userID int64, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ParseAccessToken validates the token signature and expiry and returns the
// embedded identity claims. Expired tokens report ErrTokenExpired; any other
// failure reports ErrInvalidCredentials.
func (s *AuthService) ParseAccessToken(tokenString string) (userID int64, isAdmin bool, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, false, model.ErrTokenExpired
		}
		return 0, false, model.ErrInvalidCredentials
	}
	if !token.Valid {
		return 0, false, model.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, model.ErrInvalidCredentials
	}

	idClaim, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false, model.ErrInvalidCredentials
	}

	admin, _ := claims["is_admin"].(bool)
	return int64(idClaim), admin, nil
}
