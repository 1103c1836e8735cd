package auth

import (
	"net/http"
	"strings"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/rbac"
)

// CookieName is where LoginHandler leaves the token for browser clients.
// Bearer headers take precedence when both are present.
const CookieName = "token"

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

func attach(r *http.Request, c *Claims) *http.Request {
	actor := quiz.Actor{ID: c.Sub, Username: c.Username, Role: c.Role}
	if actor.Role == "" {
		actor.Role = quiz.RoleUser
	}
	ctx := WithActor(r.Context(), actor)
	ctx = rbac.WithRole(ctx, actor.Role)
	return r.WithContext(ctx)
}

// JWTMiddleware rejects requests without a valid token and attaches the actor
// and role to the context for downstream handlers and rbac checks.
func JWTMiddleware(a *AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := tokenFromRequest(r)
			if tok == "" {
				http.Error(w, "missing credential", http.StatusUnauthorized)
				return
			}
			c, err := a.Parse(tok)
			if err != nil || c == nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, attach(r, c))
		})
	}
}

// OptionalJWT attaches the actor when a valid token is present and lets the
// request through either way. Used on public routes that behave differently
// for logged-in users (catalog "mine" filter).
func OptionalJWT(a *AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := tokenFromRequest(r); tok != "" {
				if c, err := a.Parse(tok); err == nil && c != nil {
					r = attach(r, c)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
