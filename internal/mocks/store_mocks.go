package mocks

import (
	"context"
	"database/sql"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Default responses when the Fn field is unset.
	User *domain.User
	Err  error
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

// MockInfluencerStore implements store.InfluencerStore for testing.
type MockInfluencerStore struct {
	CreateFn      func(ctx context.Context, influencer *domain.Influencer) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Influencer, error)
	GetByUserIDFn func(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error)
	ListFn        func(ctx context.Context, params store.ListParams, filter store.InfluencerListFilter) (store.Page[*domain.Influencer], error)
	UpdateFn      func(ctx context.Context, influencer *domain.Influencer) error

	Influencer *domain.Influencer
	Page       store.Page[*domain.Influencer]
	Err        error
}

var _ store.InfluencerStore = (*MockInfluencerStore)(nil)

func (m *MockInfluencerStore) Create(ctx context.Context, influencer *domain.Influencer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, influencer)
	}
	return m.Err
}

func (m *MockInfluencerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Influencer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Influencer, m.Err
}

func (m *MockInfluencerStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return m.Influencer, m.Err
}

func (m *MockInfluencerStore) List(
	ctx context.Context,
	params store.ListParams,
	filter store.InfluencerListFilter,
) (store.Page[*domain.Influencer], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params, filter)
	}
	return m.Page, m.Err
}

func (m *MockInfluencerStore) Update(ctx context.Context, influencer *domain.Influencer) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, influencer)
	}
	return m.Err
}

func (m *MockInfluencerStore) WithTx(tx *sql.Tx) store.InfluencerStore { return m }

// MockMealStore implements store.MealStore for testing.
type MockMealStore struct {
	CreateFn  func(ctx context.Context, meal *domain.Meal) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Meal, error)
	ListFn    func(ctx context.Context, params store.ListParams, filter store.MealListFilter) (store.Page[*domain.Meal], error)
	UpdateFn  func(ctx context.Context, meal *domain.Meal) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	Meal *domain.Meal
	Page store.Page[*domain.Meal]
	Err  error
}

var _ store.MealStore = (*MockMealStore)(nil)

func (m *MockMealStore) Create(ctx context.Context, meal *domain.Meal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, meal)
	}
	return m.Err
}

func (m *MockMealStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Meal, m.Err
}

func (m *MockMealStore) List(
	ctx context.Context,
	params store.ListParams,
	filter store.MealListFilter,
) (store.Page[*domain.Meal], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params, filter)
	}
	return m.Page, m.Err
}

func (m *MockMealStore) Update(ctx context.Context, meal *domain.Meal) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, meal)
	}
	return m.Err
}

func (m *MockMealStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockMealStore) WithTx(tx *sql.Tx) store.MealStore { return m }

// MockFavoriteStore implements store.FavoriteStore for testing.
type MockFavoriteStore struct {
	FavoriteFn      func(ctx context.Context, userID, mealID uuid.UUID) error
	UnfavoriteFn    func(ctx context.Context, userID, mealID uuid.UUID) error
	ListFavoritesFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)
	IsFavoritedFn   func(ctx context.Context, userID, mealID uuid.UUID) (bool, error)

	Meals     []*domain.Meal
	Favorited bool
	Err       error
}

var _ store.FavoriteStore = (*MockFavoriteStore)(nil)

func (m *MockFavoriteStore) Favorite(ctx context.Context, userID, mealID uuid.UUID) error {
	if m.FavoriteFn != nil {
		return m.FavoriteFn(ctx, userID, mealID)
	}
	return m.Err
}

func (m *MockFavoriteStore) Unfavorite(ctx context.Context, userID, mealID uuid.UUID) error {
	if m.UnfavoriteFn != nil {
		return m.UnfavoriteFn(ctx, userID, mealID)
	}
	return m.Err
}

func (m *MockFavoriteStore) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	if m.ListFavoritesFn != nil {
		return m.ListFavoritesFn(ctx, userID)
	}
	return m.Meals, m.Err
}

func (m *MockFavoriteStore) IsFavorited(ctx context.Context, userID, mealID uuid.UUID) (bool, error) {
	if m.IsFavoritedFn != nil {
		return m.IsFavoritedFn(ctx, userID, mealID)
	}
	return m.Favorited, m.Err
}

func (m *MockFavoriteStore) WithTx(tx *sql.Tx) store.FavoriteStore { return m }

// MockFollowStore implements store.FollowStore for testing.
type MockFollowStore struct {
	FollowFn        func(ctx context.Context, userID, influencerID uuid.UUID) error
	UnfollowFn      func(ctx context.Context, userID, influencerID uuid.UUID) error
	ListFollowingFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Influencer, error)

	Influencers []*domain.Influencer
	Err         error
}

var _ store.FollowStore = (*MockFollowStore)(nil)

func (m *MockFollowStore) Follow(ctx context.Context, userID, influencerID uuid.UUID) error {
	if m.FollowFn != nil {
		return m.FollowFn(ctx, userID, influencerID)
	}
	return m.Err
}

func (m *MockFollowStore) Unfollow(ctx context.Context, userID, influencerID uuid.UUID) error {
	if m.UnfollowFn != nil {
		return m.UnfollowFn(ctx, userID, influencerID)
	}
	return m.Err
}

func (m *MockFollowStore) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*domain.Influencer, error) {
	if m.ListFollowingFn != nil {
		return m.ListFollowingFn(ctx, userID)
	}
	return m.Influencers, m.Err
}

func (m *MockFollowStore) WithTx(tx *sql.Tx) store.FollowStore { return m }
