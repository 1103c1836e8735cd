package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/quizdeck/quizdeck/internal/api/http"
	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/db"
	"github.com/quizdeck/quizdeck/internal/genai"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/rbac"
	syncx "github.com/quizdeck/quizdeck/internal/sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	store := quiz.NewSQLStore(dbh)
	users := auth.NewUserStore(dbh)
	events := syncx.NewEventRepo(dbh)
	generator := genai.NewClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL)
	svc := quiz.NewService(store, generator, events)

	if err := users.EnsureAdmin(ctx, cfg.AdminUser, cfg.AdminPassHash); err != nil {
		log.Fatalf("admin seed: %v", err)
	}

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Local accounts
	r.Post("/auth/register", api.RegisterHandler(users))
	r.Post("/auth/login", api.LoginHandler(users, authSvc))
	r.Post("/auth/logout", api.LogoutHandler())
	r.With(auth.JWTMiddleware(authSvc)).Get("/auth/me", api.MeHandler(users))

	// Public catalog. The "mine" filter needs a credential, hence OptionalJWT.
	r.With(auth.OptionalJWT(authSvc)).Get("/quizzes", api.ListQuizzesHandler(svc))
	r.Get("/quizzes/{quizID}", api.GetQuizHandler(svc))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("quiz:create")).
			Post("/quizzes", api.CreateQuizHandler(svc))
		pr.With(rbac.Require("quiz:create")).
			Post("/quizzes/generate", api.GenerateQuizHandler(svc))

		// Ownership is enforced inside the service (creator or admin).
		pr.Put("/quizzes/{quizID}", api.UpdateQuizHandler(svc))
		pr.Delete("/quizzes/{quizID}", api.DeleteQuizHandler(svc))

		pr.With(rbac.Require("quiz:attempt")).
			Post("/quizzes/{quizID}/attempt", api.SubmitAttemptHandler(svc))

		pr.With(rbac.Require("result:view")).
			Get("/results", api.ListResultsHandler(svc))
		pr.With(rbac.Require("result:view")).
			Get("/results/{resultID}", api.GetResultHandler(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
