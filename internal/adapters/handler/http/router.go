package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type Config struct {
	AllowedOrigins []string
	CookieDomain   string
}

func NewHandler(api *facade.Facade, sessions ports.SessionService, cfg Config) http.Handler {
	authHandler := NewAuthHandler(api, sessions, cfg.CookieDomain, http.SameSiteLaxMode)
	userHandler := NewUserHandler(api)
	pollHandler := NewPollHandler(api)
	submissionHandler := NewSubmissionHandler(api)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(Session(sessions))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", userHandler.GetMe)

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", pollHandler.ListPolls)
			r.Post("/", pollHandler.CreatePoll)
			r.Get("/{id}", pollHandler.GetPoll)
			r.Get("/{id}/results", pollHandler.GetResults)
			r.Post("/{id}/submissions", submissionHandler.Submit)
			r.Get("/{id}/completed", submissionHandler.Completed)
		})
	})

	return r
}
