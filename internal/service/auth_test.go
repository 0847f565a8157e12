package service

import (
	"errors"
	"testing"

	"soundspace/internal/config"
	"soundspace/internal/model"
)

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.GenerateAccessToken(42, true)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	userID, isAdmin, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if userID != 42 {
		t.Errorf("user ID = %d, want 42", userID)
	}
	if !isAdmin {
		t.Error("expected the admin flag to survive the round trip")
	}
}

func TestAuthService_ParseAccessToken_Expired(t *testing.T) {
	issued := NewAuthService(&config.Config{
		JWTSecret:         "test-secret",
		AccessTokenMaxAge: -60,
	})
	token, err := issued.GenerateAccessToken(1, false)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	_, _, err = newTestAuthService().ParseAccessToken(token)
	if !errors.Is(err, model.ErrTokenExpired) {
		t.Errorf("error = %v, want ErrTokenExpired", err)
	}
}

func TestAuthService_ParseAccessToken_Invalid(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", mustToken(t, NewAuthService(&config.Config{JWTSecret: "other-secret", AccessTokenMaxAge: 3600}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.ParseAccessToken(tt.token)
			if !errors.Is(err, model.ErrInvalidCredentials) {
				t.Errorf("error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func mustToken(t *testing.T, svc *AuthService) string {
	t.Helper()
	token, err := svc.GenerateAccessToken(1, false)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}
