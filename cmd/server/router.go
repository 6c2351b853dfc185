package main

import (
	"net/http"

	"github.com/fitfoodie/fitfoodie-api/internal/api"
	apiMiddleware "github.com/fitfoodie/fitfoodie-api/internal/api/middleware"
	"github.com/fitfoodie/fitfoodie-api/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// setupRouter builds the HTTP routing table from the application's
// services. Public discovery endpoints (meal and influencer browsing) sit
// outside the authenticated group; everything that acts on behalf of a
// user requires a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	authHandler := api.NewAuthHandler(app.authService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	influencerHandler := api.NewInfluencerHandler(app.influencerService, app.logger)
	mealHandler := api.NewMealHandler(app.mealService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Public discovery endpoints
		r.Get("/influencers/", influencerHandler.List)
		r.Get("/influencers/{id}", influencerHandler.Get)
		r.Get("/meals/", mealHandler.List)
		r.Get("/meals/{id}", mealHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Influencer profile and follow endpoints
			r.Post("/influencers/profile", influencerHandler.CreateProfile)
			r.Put("/influencers/profile", influencerHandler.UpdateProfile)
			r.Post("/influencers/follow/{id}", influencerHandler.Follow)
			r.Delete("/influencers/unfollow/{id}", influencerHandler.Unfollow)

			// Meal publishing and favorite endpoints
			r.Post("/meals/", mealHandler.Create)
			r.Put("/meals/{id}", mealHandler.Update)
			r.Delete("/meals/{id}", mealHandler.Delete)
			r.Post("/meals/favorite/{id}", mealHandler.Favorite)
			r.Delete("/meals/favorite/{id}", mealHandler.Unfavorite)

			// Account endpoints
			r.Get("/users/profile", userHandler.GetProfile)
			r.Put("/users/profile", userHandler.UpdateProfile)
			r.Get("/users/favorites", userHandler.ListFavorites)
			r.Get("/users/following", userHandler.ListFollowing)
			r.Put("/users/change-password", userHandler.ChangePassword)
		})
	})

	// Liveness endpoint at the root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"message": "Welcome to FitFoodie API",
			"status":  "online",
		})
	})

	// Health check endpoint, includes database reachability
	r.Get("/health", app.handleHealth)

	// Keep error envelopes uniform for unknown routes and methods
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// handleHealth reports process and database health.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := app.db.PingContext(r.Context()); err != nil {
		app.logger.Error("health check database ping failed", "error", err)
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "ok",
	})
}
