package store

import (
	"context"
	"database/sql"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/google/uuid"
)

// MealListFilter narrows a meal listing. Tag is a substring match against
// the stored tag set's serialized form; InfluencerID is an exact match
// when non-nil.
type MealListFilter struct {
	Tag          string
	InfluencerID *uuid.UUID
}

// MealStore defines the interface for meal persistence.
type MealStore interface {
	// Create saves a new meal.
	Create(ctx context.Context, meal *domain.Meal) error

	// GetByID retrieves a meal by ID. Returns ErrMealNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error)

	// List returns a page of meals ordered newest-created first, ties
	// broken by ID, applying the filter when set.
	List(ctx context.Context, params ListParams, filter MealListFilter) (Page[*domain.Meal], error)

	// Update persists the full meal row. The influencer_id column is never
	// touched; ownership is immutable. Returns ErrMealNotFound if absent.
	Update(ctx context.Context, meal *domain.Meal) error

	// Delete removes a meal; dependent favorite edges go with it via the
	// store's referential policy. Returns ErrMealNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a MealStore bound to the given transaction.
	WithTx(tx *sql.Tx) MealStore
}

// FavoriteStore manages the user -> meal favorite edge set. Duplicate
// detection relies on the composite primary key, not read-then-write.
type FavoriteStore interface {
	// Favorite inserts a favorite edge.
	// Returns ErrAlreadyFavorited if the edge exists.
	Favorite(ctx context.Context, userID, mealID uuid.UUID) error

	// Unfavorite removes a favorite edge.
	// Returns ErrNotFavorited if the edge does not exist.
	Unfavorite(ctx context.Context, userID, mealID uuid.UUID) error

	// ListFavorites returns the meals a user has favorited, newest edge first.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)

	// IsFavorited reports whether the favorite edge exists.
	IsFavorited(ctx context.Context, userID, mealID uuid.UUID) (bool, error)

	// WithTx returns a FavoriteStore bound to the given transaction.
	WithTx(tx *sql.Tx) FavoriteStore
}
