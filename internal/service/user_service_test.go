package service_test

import (
	"context"
	"testing"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/mocks"
	"github.com/fitfoodie/fitfoodie-api/internal/service"
	"github.com/fitfoodie/fitfoodie-api/internal/service/auth"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(
	userStore *mocks.MockUserStore,
	favoriteStore *mocks.MockFavoriteStore,
	followStore *mocks.MockFollowStore,
	hasher *mocks.MockPasswordHasher,
) service.UserService {
	return service.NewUserService(userStore, favoriteStore, followStore, hasher, hasher, testLogger())
}

func TestUserServiceGetProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: &domain.User{ID: userID, Email: "user@example.com"}}
		svc := newTestUserService(userStore, &mocks.MockFavoriteStore{}, &mocks.MockFollowStore{}, &mocks.MockPasswordHasher{})

		user, err := svc.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		svc := newTestUserService(userStore, &mocks.MockFavoriteStore{}, &mocks.MockFollowStore{}, &mocks.MockPasswordHasher{})

		_, err := svc.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserServiceUpdateProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var persisted *domain.User
	userStore := &mocks.MockUserStore{
		User: &domain.User{ID: userID, Email: "user@example.com", Name: "Old Name"},
		UpdateFn: func(ctx context.Context, user *domain.User) error {
			persisted = user
			return nil
		},
	}

	svc := newTestUserService(userStore, &mocks.MockFavoriteStore{}, &mocks.MockFollowStore{}, &mocks.MockPasswordHasher{})

	name := "New Name"
	bio := "Lifting and cooking"
	user, err := svc.UpdateProfile(context.Background(), userID, domain.UserProfileUpdate{
		Name: &name,
		Bio:  &bio,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "Lifting and cooking", user.Bio)
	require.NotNil(t, persisted)
	assert.Equal(t, "New Name", persisted.Name)
}

func TestUserServiceListFavorites(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	meals := []*domain.Meal{{ID: uuid.New(), Title: "Overnight Oats"}}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: &domain.User{ID: userID}}
		favoriteStore := &mocks.MockFavoriteStore{Meals: meals}
		svc := newTestUserService(userStore, favoriteStore, &mocks.MockFollowStore{}, &mocks.MockPasswordHasher{})

		got, err := svc.ListFavorites(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, meals, got)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		svc := newTestUserService(userStore, &mocks.MockFavoriteStore{Meals: meals}, &mocks.MockFollowStore{}, &mocks.MockPasswordHasher{})

		_, err := svc.ListFavorites(context.Background(), userID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserServiceListFollowing(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	influencers := []*domain.Influencer{{ID: uuid.New(), Specialty: "meal prep"}}

	userStore := &mocks.MockUserStore{User: &domain.User{ID: userID}}
	followStore := &mocks.MockFollowStore{Influencers: influencers}
	svc := newTestUserService(userStore, &mocks.MockFavoriteStore{}, followStore, &mocks.MockPasswordHasher{})

	got, err := svc.ListFollowing(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, influencers, got)
}

func TestUserServiceChangePassword(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var persisted *domain.User
		userStore := &mocks.MockUserStore{
			User: &domain.User{ID: userID, Email: "user@example.com", HashedPassword: "old-hash"},
			UpdateFn: func(ctx context.Context, user *domain.User) error {
				persisted = user
				return nil
			},
		}
		hasher := &mocks.MockPasswordHasher{Hashed: "new-hash"}

		svc := newTestUserService(userStore, &mocks.MockFavoriteStore{}, &mocks.MockFollowStore{}, hasher)
		err := svc.ChangePassword(context.Background(), userID, "oldpassword1", "newpassword1")

		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, "new-hash", persisted.HashedPassword)
	})

	t.Run("wrong current password", func(t *testing.T) {
		t.Parallel()

		updateCalled := false
		userStore := &mocks.MockUserStore{
			User: &domain.User{ID: userID, HashedPassword: "old-hash"},
			UpdateFn: func(ctx context.Context, user *domain.User) error {
				updateCalled = true
				return nil
			},
		}
		hasher := &mocks.MockPasswordHasher{CompareErr: auth.ErrInvalidCredentials}

		svc := newTestUserService(userStore, &mocks.MockFavoriteStore{}, &mocks.MockFollowStore{}, hasher)
		err := svc.ChangePassword(context.Background(), userID, "wrongpassword", "newpassword1")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.False(t, updateCalled, "stored hash must be untouched on failed verification")
	})

	t.Run("new password too short", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{
			User: &domain.User{ID: userID, HashedPassword: "old-hash"},
		}
		svc := newTestUserService(userStore, &mocks.MockFavoriteStore{}, &mocks.MockFollowStore{}, &mocks.MockPasswordHasher{})

		err := svc.ChangePassword(context.Background(), userID, "oldpassword1", "short")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})
}
