package middleware

import (
	"context"
	"net/http"
	"strings"

	"cardlink-backend/pkg/jwtutil"
	"cardlink-backend/pkg/response"
)

type contextKey string

const (
	ContextUserID  contextKey = "user_id"
	ContextIsStaff contextKey = "is_staff"
)

type Auth struct {
	verifier *jwtutil.Signer
}

func NewAuth(verifier *jwtutil.Signer) *Auth {
	return &Auth{verifier: verifier}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Require rejects requests without a valid access token.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}

		claims, err := a.verifier.Verify(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
		ctx = context.WithValue(ctx, ContextIsStaff, claims.IsStaff)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the user identity when a valid token is present and
// passes the request through untouched otherwise. Endpoints that keep a
// uniform "empty list" shape for anonymous polling sit behind this.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if claims, err := a.verifier.Verify(token); err == nil {
				ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
				ctx = context.WithValue(ctx, ContextIsStaff, claims.IsStaff)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// UserID extracts the authenticated user ID from the request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextUserID).(string)
	return id, ok && id != ""
}

// IsStaff reports whether the authenticated user has staff rights.
func IsStaff(ctx context.Context) bool {
	staff, ok := ctx.Value(ContextIsStaff).(bool)
	return ok && staff
}
