package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"soundspace/internal/access"
	"soundspace/internal/httputil"
	"soundspace/internal/model"
)

// TokenParser validates an access token and returns the identity claims
// embedded in it. Implemented by service.AuthService.
type TokenParser interface {
	ParseAccessToken(tokenString string) (userID int64, isAdmin bool, err error)
}

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// identityKey is the context key for the authenticated identity
const identityKey contextKey = "identity"

// AuthMiddleware creates a middleware that validates JWT tokens.
// Checks Authorization header first (for mobile), then falls back to cookie (for web).
func AuthMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolveIdentity(r, parser)
			if err != "" {
				httputil.WriteUnauthorized(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware resolves the identity when a valid token is present
// but lets unauthenticated requests through. Used on public read endpoints.
func OptionalAuthMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, errMsg := resolveIdentity(r, parser)
			if errMsg == "" && identity != nil {
				ctx := context.WithValue(r.Context(), identityKey, identity)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolveIdentity extracts the token and hands it to the parser. The second
// return value is a non-empty error message when authentication fails.
func resolveIdentity(r *http.Request, parser TokenParser) (*access.Identity, string) {
	var tokenString string

	// 1. Try Authorization header first (mobile apps)
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = parts[1]
		}
	}

	// 2. Fall back to cookie (web browsers)
	if tokenString == "" {
		cookie, err := r.Cookie("access_token")
		if err == nil && cookie.Value != "" {
			tokenString = cookie.Value
		}
	}

	if tokenString == "" {
		return nil, "Missing authentication token"
	}

	userID, isAdmin, err := parser.ParseAccessToken(tokenString)
	if err != nil {
		if errors.Is(err, model.ErrTokenExpired) {
			return nil, "Access token has expired"
		}
		return nil, "Invalid authentication token"
	}

	return &access.Identity{UserID: userID, IsAdmin: isAdmin}, ""
}

// GetIdentity extracts the authenticated identity from the request context.
// Returns nil for unauthenticated requests.
func GetIdentity(ctx context.Context) *access.Identity {
	identity, ok := ctx.Value(identityKey).(*access.Identity)
	if !ok {
		return nil
	}
	return identity
}

// GetUserIDFromContext extracts the user ID from the request context.
// Returns the user ID and true if found, or 0 and false if not found.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	identity := GetIdentity(ctx)
	if identity == nil {
		return 0, false
	}
	return identity.UserID, true
}
