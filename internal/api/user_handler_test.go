package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/mocks"
	"github.com/fitfoodie/fitfoodie-api/internal/service/auth"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandlerGetProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockUserService{User: &domain.User{
			ID:             userID,
			Email:          "user@example.com",
			HashedPassword: "secret-hash",
		}}
		handler := NewUserHandler(svc, testLogger())

		req := withUser(httptest.NewRequest(http.MethodGet, "/api/users/profile", nil), userID)
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret-hash",
			"password hash never appears in responses")

		var user domain.User
		decodeBody(t, rec, &user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "user@example.com", user.Email)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{}, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{Err: store.ErrUserNotFound}, testLogger())

		req := withUser(httptest.NewRequest(http.MethodGet, "/api/users/profile", nil), userID)
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandlerUpdateProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc := &mocks.MockUserService{
		UpdateProfileFn: func(ctx context.Context, gotUserID uuid.UUID, update domain.UserProfileUpdate) (*domain.User, error) {
			assert.Equal(t, userID, gotUserID)
			require.NotNil(t, update.Name)
			assert.Equal(t, "New Name", *update.Name)
			assert.Nil(t, update.Bio, "absent fields stay nil")
			require.NotNil(t, update.Age)
			assert.Equal(t, 28, *update.Age)
			return &domain.User{ID: userID, Name: *update.Name}, nil
		},
	}
	handler := NewUserHandler(svc, testLogger())

	name := "New Name"
	age := 28
	req := withUser(newJSONRequest(t, http.MethodPut, "/api/users/profile", UpdateUserProfileRequest{
		Name: &name,
		Age:  &age,
	}), userID)
	rec := httptest.NewRecorder()
	handler.UpdateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Profile updated successfully", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, "New Name", resp.User.Name)
}

func TestUserHandlerListFavorites(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &mocks.MockUserService{Meals: []*domain.Meal{
		{ID: uuid.New(), Title: "Overnight Oats"},
		{ID: uuid.New(), Title: "Chicken Bowl"},
	}}
	handler := NewUserHandler(svc, testLogger())

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/users/favorites", nil), userID)
	rec := httptest.NewRecorder()
	handler.ListFavorites(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FavoritesResponse
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Favorites, 2)
}

func TestUserHandlerListFollowing(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &mocks.MockUserService{Influencers: []*domain.Influencer{
		{ID: uuid.New(), Specialty: "keto"},
	}}
	handler := NewUserHandler(svc, testLogger())

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/users/following", nil), userID)
	rec := httptest.NewRecorder()
	handler.ListFollowing(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FollowingResponse
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Following, 1)
}

func TestUserHandlerChangePassword(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{}, testLogger())

		req := withUser(newJSONRequest(t, http.MethodPut, "/api/users/change-password", ChangePasswordRequest{
			CurrentPassword: "oldpassword1",
			NewPassword:     "newpassword1",
		}), userID)
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Password changed successfully", resp.Message)
	})

	t.Run("wrong current password", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{Err: auth.ErrInvalidCredentials}, testLogger())

		req := withUser(newJSONRequest(t, http.MethodPut, "/api/users/change-password", ChangePasswordRequest{
			CurrentPassword: "wrongpassword",
			NewPassword:     "newpassword1",
		}), userID)
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("new password too short", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{}, testLogger())

		req := withUser(newJSONRequest(t, http.MethodPut, "/api/users/change-password", ChangePasswordRequest{
			CurrentPassword: "oldpassword1",
			NewPassword:     "short",
		}), userID)
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
