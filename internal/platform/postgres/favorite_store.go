package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/platform/logger"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// FavoriteStore implements the store.FavoriteStore interface using a
// PostgreSQL database as the storage backend. The (user_id, meal_id)
// composite primary key makes duplicate detection atomic; there is no
// check-then-insert window.
type FavoriteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewFavoriteStore creates a new PostgreSQL implementation of the
// FavoriteStore interface.
func NewFavoriteStore(db store.DBTX, log *slog.Logger) *FavoriteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &FavoriteStore{
		db:     db,
		logger: log.With(slog.String("component", "favorite_store")),
	}
}

// Ensure FavoriteStore implements store.FavoriteStore.
var _ store.FavoriteStore = (*FavoriteStore)(nil)

// WithTx implements store.FavoriteStore.WithTx.
func (s *FavoriteStore) WithTx(tx *sql.Tx) store.FavoriteStore {
	return &FavoriteStore{
		db:     tx,
		logger: s.logger,
	}
}

// Favorite implements store.FavoriteStore.Favorite.
func (s *FavoriteStore) Favorite(ctx context.Context, userID, mealID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO meal_favorites (user_id, meal_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, userID, mealID, time.Now().UTC())
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("meal already favorited",
				slog.String("user_id", userID.String()),
				slog.String("meal_id", mealID.String()))
			return MapUniqueViolation(err, store.ErrAlreadyFavorited)
		}
		if IsForeignKeyViolation(err) {
			return store.ErrMealNotFound
		}
		log.Error("failed to favorite meal",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("meal_id", mealID.String()))
		return MapError(err)
	}

	log.Info("meal favorited",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", mealID.String()))
	return nil
}

// Unfavorite implements store.FavoriteStore.Unfavorite.
func (s *FavoriteStore) Unfavorite(ctx context.Context, userID, mealID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM meal_favorites WHERE user_id = $1 AND meal_id = $2`
	result, err := s.db.ExecContext(ctx, query, userID, mealID)
	if err != nil {
		log.Error("failed to unfavorite meal",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("meal_id", mealID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrNotFavorited); err != nil {
		return err
	}

	log.Info("meal unfavorited",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", mealID.String()))
	return nil
}

// ListFavorites implements store.FavoriteStore.ListFavorites. Meals are
// ordered by when the user favorited them, most recent first.
func (s *FavoriteStore) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + mealColumnsQualified + `
		FROM meals
		JOIN meal_favorites mf ON mf.meal_id = meals.id
		WHERE mf.user_id = $1
		ORDER BY mf.created_at DESC, meals.id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list favorites",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer closeRows(rows, log)

	meals, err := scanMealRows(rows)
	if err != nil {
		log.Error("failed to scan favorite meal rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return meals, nil
}

// IsFavorited implements store.FavoriteStore.IsFavorited.
func (s *FavoriteStore) IsFavorited(ctx context.Context, userID, mealID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM meal_favorites WHERE user_id = $1 AND meal_id = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, mealID).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
