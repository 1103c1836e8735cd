package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/rbac"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewAuthService("test-secret")
	tok, err := svc.IssueJWT("u1", "alice", "user")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	c, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Sub != "u1" || c.Username != "alice" || c.Role != "user" {
		t.Fatalf("claims = %+v", c)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewAuthService("secret-a").IssueJWT("u1", "alice", "user")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	if _, err := NewAuthService("secret-b").Parse(tok); err == nil {
		t.Fatalf("token signed with another secret parsed")
	}
}

func echoActor(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFromContext(r.Context())
		if actor.ID == "" {
			t.Errorf("no actor attached")
		}
		if rbac.RoleFromContext(r.Context()) != actor.Role {
			t.Errorf("role not attached for rbac")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddlewareBearer(t *testing.T) {
	svc := NewAuthService("test-secret")
	tok, _ := svc.IssueJWT("u1", "alice", "user")

	h := JWTMiddleware(svc)(echoActor(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestJWTMiddlewareCookie(t *testing.T) {
	svc := NewAuthService("test-secret")
	tok, _ := svc.IssueJWT("u1", "alice", "user")

	h := JWTMiddleware(svc)(echoActor(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestJWTMiddlewareRejects(t *testing.T) {
	svc := NewAuthService("test-secret")
	h := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("handler reached without credential")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", rec.Code)
	}
}

func TestOptionalJWTPassesAnonymous(t *testing.T) {
	svc := NewAuthService("test-secret")
	h := OptionalJWT(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ActorFromContext(r.Context()) != (quiz.Actor{}) {
			t.Errorf("anonymous request got an actor")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
