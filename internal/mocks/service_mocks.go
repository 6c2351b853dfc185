package mocks

import (
	"context"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/service"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// MockAuthService implements service.AuthService for testing.
type MockAuthService struct {
	RegisterFn func(ctx context.Context, email, password, name string) (*domain.User, *service.TokenPair, error)
	LoginFn    func(ctx context.Context, email, password string) (*service.TokenPair, error)
	RefreshFn  func(ctx context.Context, refreshToken string) (*service.TokenPair, error)

	User *domain.User
	Pair *service.TokenPair
	Err  error
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Register(
	ctx context.Context,
	email, password, name string,
) (*domain.User, *service.TokenPair, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, email, password, name)
	}
	return m.User, m.Pair, m.Err
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.TokenPair, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return m.Pair, m.Err
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx, refreshToken)
	}
	return m.Pair, m.Err
}

// MockUserService implements service.UserService for testing.
type MockUserService struct {
	GetProfileFn     func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfileFn  func(ctx context.Context, userID uuid.UUID, update domain.UserProfileUpdate) (*domain.User, error)
	ListFavoritesFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)
	ListFollowingFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Influencer, error)
	ChangePasswordFn func(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error

	User        *domain.User
	Meals       []*domain.Meal
	Influencers []*domain.Influencer
	Err         error
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, userID)
	}
	return m.User, m.Err
}

func (m *MockUserService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update domain.UserProfileUpdate,
) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, userID, update)
	}
	return m.User, m.Err
}

func (m *MockUserService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	if m.ListFavoritesFn != nil {
		return m.ListFavoritesFn(ctx, userID)
	}
	return m.Meals, m.Err
}

func (m *MockUserService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*domain.Influencer, error) {
	if m.ListFollowingFn != nil {
		return m.ListFollowingFn(ctx, userID)
	}
	return m.Influencers, m.Err
}

func (m *MockUserService) ChangePassword(
	ctx context.Context,
	userID uuid.UUID,
	currentPassword, newPassword string,
) error {
	if m.ChangePasswordFn != nil {
		return m.ChangePasswordFn(ctx, userID, currentPassword, newPassword)
	}
	return m.Err
}

// MockInfluencerService implements service.InfluencerService for testing.
type MockInfluencerService struct {
	ListFn          func(ctx context.Context, params store.ListParams, specialty string) (store.Page[*domain.Influencer], error)
	GetFn           func(ctx context.Context, id uuid.UUID) (*domain.Influencer, error)
	CreateProfileFn func(ctx context.Context, userID uuid.UUID, specialty string, links map[string]string) (*domain.Influencer, error)
	UpdateProfileFn func(ctx context.Context, userID uuid.UUID, update domain.InfluencerProfileUpdate) (*domain.Influencer, error)
	FollowFn        func(ctx context.Context, userID, influencerID uuid.UUID) error
	UnfollowFn      func(ctx context.Context, userID, influencerID uuid.UUID) error

	Influencer *domain.Influencer
	Page       store.Page[*domain.Influencer]
	Err        error
}

var _ service.InfluencerService = (*MockInfluencerService)(nil)

func (m *MockInfluencerService) List(
	ctx context.Context,
	params store.ListParams,
	specialty string,
) (store.Page[*domain.Influencer], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params, specialty)
	}
	return m.Page, m.Err
}

func (m *MockInfluencerService) Get(ctx context.Context, id uuid.UUID) (*domain.Influencer, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Influencer, m.Err
}

func (m *MockInfluencerService) CreateProfile(
	ctx context.Context,
	userID uuid.UUID,
	specialty string,
	links map[string]string,
) (*domain.Influencer, error) {
	if m.CreateProfileFn != nil {
		return m.CreateProfileFn(ctx, userID, specialty, links)
	}
	return m.Influencer, m.Err
}

func (m *MockInfluencerService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update domain.InfluencerProfileUpdate,
) (*domain.Influencer, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, userID, update)
	}
	return m.Influencer, m.Err
}

func (m *MockInfluencerService) Follow(ctx context.Context, userID, influencerID uuid.UUID) error {
	if m.FollowFn != nil {
		return m.FollowFn(ctx, userID, influencerID)
	}
	return m.Err
}

func (m *MockInfluencerService) Unfollow(ctx context.Context, userID, influencerID uuid.UUID) error {
	if m.UnfollowFn != nil {
		return m.UnfollowFn(ctx, userID, influencerID)
	}
	return m.Err
}

// MockMealService implements service.MealService for testing.
type MockMealService struct {
	ListFn       func(ctx context.Context, params store.ListParams, filter store.MealListFilter) (store.Page[*domain.Meal], error)
	GetFn        func(ctx context.Context, id uuid.UUID) (*domain.Meal, error)
	CreateFn     func(ctx context.Context, userID uuid.UUID, fields domain.MealFields) (*domain.Meal, error)
	UpdateFn     func(ctx context.Context, userID, mealID uuid.UUID, update domain.MealUpdate) (*domain.Meal, error)
	DeleteFn     func(ctx context.Context, userID, mealID uuid.UUID) error
	FavoriteFn   func(ctx context.Context, userID, mealID uuid.UUID) error
	UnfavoriteFn func(ctx context.Context, userID, mealID uuid.UUID) error

	Meal *domain.Meal
	Page store.Page[*domain.Meal]
	Err  error
}

var _ service.MealService = (*MockMealService)(nil)

func (m *MockMealService) List(
	ctx context.Context,
	params store.ListParams,
	filter store.MealListFilter,
) (store.Page[*domain.Meal], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params, filter)
	}
	return m.Page, m.Err
}

func (m *MockMealService) Get(ctx context.Context, id uuid.UUID) (*domain.Meal, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Meal, m.Err
}

func (m *MockMealService) Create(
	ctx context.Context,
	userID uuid.UUID,
	fields domain.MealFields,
) (*domain.Meal, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, fields)
	}
	return m.Meal, m.Err
}

func (m *MockMealService) Update(
	ctx context.Context,
	userID, mealID uuid.UUID,
	update domain.MealUpdate,
) (*domain.Meal, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, mealID, update)
	}
	return m.Meal, m.Err
}

func (m *MockMealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, mealID)
	}
	return m.Err
}

func (m *MockMealService) Favorite(ctx context.Context, userID, mealID uuid.UUID) error {
	if m.FavoriteFn != nil {
		return m.FavoriteFn(ctx, userID, mealID)
	}
	return m.Err
}

func (m *MockMealService) Unfavorite(ctx context.Context, userID, mealID uuid.UUID) error {
	if m.UnfavoriteFn != nil {
		return m.UnfavoriteFn(ctx, userID, mealID)
	}
	return m.Err
}
