package httpserver

import (
	"net/http"
	"time"

	"game-night-go/internal/config"
	"game-night-go/internal/transport/httpserver/handler"
	authmw "game-night-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.Auth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/login", handlers.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/households/me", handlers.GetMyHousehold)
			r.Post("/households", handlers.CreateHousehold)
			r.Post("/households/join", handlers.JoinHousehold)
			r.Get("/households/me/members", handlers.ListHouseholdMembers)

			r.Get("/games", handlers.ListGames)
			r.Post("/games", handlers.AddGame)
			r.Patch("/games/{id}", handlers.UpdateGame)
			r.Delete("/games/{id}", handlers.DeleteGame)

			r.Get("/plays", handlers.ListPlays)
			r.Post("/plays", handlers.CreatePlay)
			r.Put("/plays/{id}", handlers.UpdatePlay)
			r.Delete("/plays/{id}", handlers.DeletePlay)

			r.Get("/recommendations", handlers.GetRecommendation)
			r.Post("/recommendations/generate", handlers.GenerateRecommendation)
			r.Post("/recommendations/{id}/select", handlers.SelectRecommendedGame)
			r.Post("/recommendations/{id}/played", handlers.MarkRecommendationPlayed)

			r.Get("/catalog/search", handlers.SearchCatalog)

			r.Get("/dashboard", handlers.Dashboard)
		})
	})

	return r
}
