package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/emrekoca/recipebox/internal/api/handlers"
	"github.com/emrekoca/recipebox/internal/api/httpx"
	"github.com/emrekoca/recipebox/internal/auth"
	"github.com/emrekoca/recipebox/internal/config"
	"github.com/emrekoca/recipebox/internal/metrics"
	"github.com/emrekoca/recipebox/internal/middleware"
	"github.com/emrekoca/recipebox/internal/services"
)

func NewRouter(cfg config.Config, tm *auth.TokenManager, us *services.UserService, rs *services.RecipeService) http.Handler {
	authHandler := handlers.NewAuthHandler(us)
	userHandler := handlers.NewUserHandler(us)
	recipeHandler := handlers.NewRecipeHandler(rs)
	authmw := middleware.NewAuthMiddleware(tm)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(authmw.Auth)

		r.Get("/me", userHandler.Me)
		r.Put("/me", userHandler.UpdateMe)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipeHandler.List)
			r.Post("/", recipeHandler.Create)
			r.Get("/{id}", recipeHandler.Get)
			r.Patch("/{id}", recipeHandler.Update)
			r.Delete("/{id}", recipeHandler.Delete)
		})
	})

	return r
}
