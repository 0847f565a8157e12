package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"soundspace/internal/access"
	"soundspace/internal/model"
)

type mockTokenParser struct {
	parseFn func(tokenString string) (int64, bool, error)
	tokens  []string
}

func (m *mockTokenParser) ParseAccessToken(tokenString string) (userID int64, isAdmin bool, err error) {
	m.tokens = append(m.tokens, tokenString)
	if m.parseFn != nil {
		return m.parseFn(tokenString)
	}
	return 0, false, model.ErrInvalidCredentials
}

func identityRecorder(got **access.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_DelegatesToParser(t *testing.T) {
	parser := &mockTokenParser{
		parseFn: func(tokenString string) (int64, bool, error) {
			return 42, true, nil
		},
	}
	var got *access.Identity
	handler := AuthMiddleware(parser)(identityRecorder(&got))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(parser.tokens) != 1 || parser.tokens[0] != "some-token" {
		t.Errorf("parser saw tokens %v, want [some-token]", parser.tokens)
	}
	if got == nil {
		t.Fatal("expected an identity in the request context")
	}
	if got.UserID != 42 || !got.IsAdmin {
		t.Errorf("identity = %+v, want UserID=42 IsAdmin=true", got)
	}
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	parser := &mockTokenParser{
		parseFn: func(tokenString string) (int64, bool, error) {
			return 7, false, nil
		},
	}
	var got *access.Identity
	handler := AuthMiddleware(parser)(identityRecorder(&got))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(parser.tokens) != 1 || parser.tokens[0] != "cookie-token" {
		t.Errorf("parser saw tokens %v, want [cookie-token]", parser.tokens)
	}
	if got == nil || got.UserID != 7 {
		t.Errorf("identity = %+v, want UserID=7", got)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		parseErr    error
		wantMessage string
	}{
		{"missing token", "", nil, "Missing authentication token"},
		{"expired token", "stale", model.ErrTokenExpired, "Access token has expired"},
		{"invalid token", "garbage", model.ErrInvalidCredentials, "Invalid authentication token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &mockTokenParser{
				parseFn: func(tokenString string) (int64, bool, error) {
					return 0, false, tt.parseErr
				},
			}
			handler := AuthMiddleware(parser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not run for a rejected request")
			}))

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantMessage) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantMessage)
			}
		})
	}
}

func TestOptionalAuthMiddleware_AnonymousPassesThrough(t *testing.T) {
	parser := &mockTokenParser{}
	var got *access.Identity
	handler := OptionalAuthMiddleware(parser)(identityRecorder(&got))

	req := httptest.NewRequest(http.MethodGet, "/sounds", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != nil {
		t.Errorf("identity = %+v, want nil for anonymous request", got)
	}
	if len(parser.tokens) != 0 {
		t.Errorf("parser called with %v, want no calls without a token", parser.tokens)
	}
}
