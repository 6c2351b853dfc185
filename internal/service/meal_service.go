package service

import (
	"context"
	"log/slog"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// MealService provides meal CRUD (restricted to the owning influencer)
// and the favorite/unfavorite relationship toggles.
type MealService interface {
	// List returns a page of meals, optionally filtered by tag substring
	// and/or publishing influencer, ordered newest first.
	List(ctx context.Context, params store.ListParams, filter store.MealListFilter) (store.Page[*domain.Meal], error)

	// Get retrieves a meal by ID. Returns store.ErrMealNotFound if absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.Meal, error)

	// Create publishes a new meal owned by the acting user's influencer
	// profile. Returns ErrNotInfluencer if the user has not become an
	// influencer, store.ErrInfluencerNotFound if the profile row is
	// missing, and domain validation errors for missing title/description.
	Create(ctx context.Context, userID uuid.UUID, fields domain.MealFields) (*domain.Meal, error)

	// Update applies a sparse update to a meal the acting user owns.
	// Returns store.ErrMealNotFound if the meal is absent and
	// ErrMealNotOwned if it belongs to another influencer.
	Update(ctx context.Context, userID, mealID uuid.UUID, update domain.MealUpdate) (*domain.Meal, error)

	// Delete removes a meal the acting user owns, with the same
	// authorization contract as Update.
	Delete(ctx context.Context, userID, mealID uuid.UUID) error

	// Favorite adds a favorite edge from the user to the meal. Returns
	// store.ErrAlreadyFavorited if the edge exists.
	Favorite(ctx context.Context, userID, mealID uuid.UUID) error

	// Unfavorite removes the favorite edge. Returns store.ErrNotFavorited
	// if the edge does not exist.
	Unfavorite(ctx context.Context, userID, mealID uuid.UUID) error
}

// mealService implements MealService.
type mealService struct {
	userStore       store.UserStore
	influencerStore store.InfluencerStore
	mealStore       store.MealStore
	favoriteStore   store.FavoriteStore
	logger          *slog.Logger
}

// NewMealService creates a new MealService.
func NewMealService(
	userStore store.UserStore,
	influencerStore store.InfluencerStore,
	mealStore store.MealStore,
	favoriteStore store.FavoriteStore,
	log *slog.Logger,
) MealService {
	return &mealService{
		userStore:       userStore,
		influencerStore: influencerStore,
		mealStore:       mealStore,
		favoriteStore:   favoriteStore,
		logger:          log.With(slog.String("component", "meal_service")),
	}
}

// List implements MealService.List.
func (s *mealService) List(
	ctx context.Context,
	params store.ListParams,
	filter store.MealListFilter,
) (store.Page[*domain.Meal], error) {
	return s.mealStore.List(ctx, params, filter)
}

// Get implements MealService.Get.
func (s *mealService) Get(ctx context.Context, id uuid.UUID) (*domain.Meal, error) {
	return s.mealStore.GetByID(ctx, id)
}

// Create implements MealService.Create.
func (s *mealService) Create(
	ctx context.Context,
	userID uuid.UUID,
	fields domain.MealFields,
) (*domain.Meal, error) {
	influencer, err := s.actingInfluencer(ctx, userID)
	if err != nil {
		return nil, err
	}

	meal, err := domain.NewMeal(influencer.ID, fields)
	if err != nil {
		return nil, err
	}

	if err := s.mealStore.Create(ctx, meal); err != nil {
		s.logger.Error("failed to create meal",
			"error", err,
			"influencer_id", influencer.ID)
		return nil, err
	}

	s.logger.Info("meal created",
		"meal_id", meal.ID,
		"influencer_id", influencer.ID)
	return meal, nil
}

// Update implements MealService.Update.
func (s *mealService) Update(
	ctx context.Context,
	userID, mealID uuid.UUID,
	update domain.MealUpdate,
) (*domain.Meal, error) {
	meal, err := s.ownedMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	meal.Apply(update)

	if err := s.mealStore.Update(ctx, meal); err != nil {
		s.logger.Error("failed to update meal",
			"error", err,
			"meal_id", mealID)
		return nil, err
	}

	s.logger.Debug("meal updated", "meal_id", mealID)
	return meal, nil
}

// Delete implements MealService.Delete.
func (s *mealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	if _, err := s.ownedMeal(ctx, userID, mealID); err != nil {
		return err
	}

	if err := s.mealStore.Delete(ctx, mealID); err != nil {
		s.logger.Error("failed to delete meal",
			"error", err,
			"meal_id", mealID)
		return err
	}

	s.logger.Info("meal deleted", "meal_id", mealID)
	return nil
}

// Favorite implements MealService.Favorite.
func (s *mealService) Favorite(ctx context.Context, userID, mealID uuid.UUID) error {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.mealStore.GetByID(ctx, mealID); err != nil {
		return err
	}

	return s.favoriteStore.Favorite(ctx, userID, mealID)
}

// Unfavorite implements MealService.Unfavorite.
func (s *mealService) Unfavorite(ctx context.Context, userID, mealID uuid.UUID) error {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.mealStore.GetByID(ctx, mealID); err != nil {
		return err
	}

	return s.favoriteStore.Unfavorite(ctx, userID, mealID)
}

// actingInfluencer resolves the acting user's influencer profile,
// enforcing the influencer-only rule for meal publication.
func (s *mealService) actingInfluencer(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsInfluencer {
		return nil, ErrNotInfluencer
	}

	return s.influencerStore.GetByUserID(ctx, userID)
}

// ownedMeal loads a meal and verifies the acting user's influencer profile
// owns it. Existence is checked before ownership so a missing meal reads
// as 404, not 403.
func (s *mealService) ownedMeal(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error) {
	meal, err := s.mealStore.GetByID(ctx, mealID)
	if err != nil {
		return nil, err
	}

	influencer, err := s.actingInfluencer(ctx, userID)
	if err != nil {
		return nil, err
	}

	if meal.InfluencerID != influencer.ID {
		return nil, ErrMealNotOwned
	}

	return meal, nil
}
