package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitfoodie/fitfoodie-api/internal/config"
	"github.com/fitfoodie/fitfoodie-api/internal/platform/logger"
	"github.com/fitfoodie/fitfoodie-api/internal/platform/postgres"
	"github.com/fitfoodie/fitfoodie-api/internal/service"
	"github.com/fitfoodie/fitfoodie-api/internal/service/auth"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
)

// application holds the fully wired dependency graph: configuration,
// logging, the database handle, stores, and services. Handlers are built
// from it in setupRouter.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore       store.UserStore
	influencerStore store.InfluencerStore
	mealStore       store.MealStore
	favoriteStore   store.FavoriteStore
	followStore     store.FollowStore

	jwtService        auth.JWTService
	authService       service.AuthService
	userService       service.UserService
	influencerService service.InfluencerService
	mealService       service.MealService
}

// newApplication loads configuration, connects to the database, runs
// pending migrations, and wires every layer together.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := openDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		db.Close()
		return nil, err
	}

	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	if err := app.wireServices(); err != nil {
		db.Close()
		return nil, err
	}

	return app, nil
}

// wireServices builds the store and service layers on the established
// database connection.
func (app *application) wireServices() error {
	app.userStore = postgres.NewUserStore(app.db, app.logger)
	app.influencerStore = postgres.NewInfluencerStore(app.db, app.logger)
	app.mealStore = postgres.NewMealStore(app.db, app.logger)
	app.favoriteStore = postgres.NewFavoriteStore(app.db, app.logger)
	app.followStore = postgres.NewFollowStore(app.db, app.logger)

	jwtService, err := auth.NewJWTService(app.config.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	hasher := auth.NewBcryptHasher(app.config.Auth.BcryptCost)
	accessLifetime := time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute

	app.authService = service.NewAuthService(
		app.userStore, jwtService, hasher, hasher, accessLifetime, app.logger)
	app.userService = service.NewUserService(
		app.userStore, app.favoriteStore, app.followStore, hasher, hasher, app.logger)
	app.influencerService = service.NewInfluencerService(
		app.db, app.userStore, app.influencerStore, app.followStore, app.logger)
	app.mealService = service.NewMealService(
		app.userStore, app.influencerStore, app.mealStore, app.favoriteStore, app.logger)

	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
