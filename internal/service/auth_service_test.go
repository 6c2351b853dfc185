package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/mocks"
	"github.com/fitfoodie/fitfoodie-api/internal/service"
	"github.com/fitfoodie/fitfoodie-api/internal/service/auth"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(
	userStore *mocks.MockUserStore,
	jwtService *mocks.MockJWTService,
	hasher *mocks.MockPasswordHasher,
) service.AuthService {
	return service.NewAuthService(userStore, jwtService, hasher, hasher, time.Hour, testLogger())
}

func TestAuthServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var created *domain.User
		userStore := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				created = user
				return nil
			},
		}
		jwtService := &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"}
		hasher := &mocks.MockPasswordHasher{Hashed: "$2a$10$hashed"}

		svc := newTestAuthService(userStore, jwtService, hasher)
		user, pair, err := svc.Register(context.Background(), "new@example.com", "password123", "New User")

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "New User", user.Name)
		assert.Equal(t, "$2a$10$hashed", user.HashedPassword)
		assert.Empty(t, user.Password, "plaintext is cleared before storage")
		assert.Equal(t, "access-token", pair.AccessToken)
		assert.Equal(t, "refresh-token", pair.RefreshToken)
		assert.Equal(t, user.ID, pair.UserID)

		require.NotNil(t, created)
		assert.Empty(t, created.Password)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrEmailExists}
		svc := newTestAuthService(userStore, &mocks.MockJWTService{}, &mocks.MockPasswordHasher{})

		_, _, err := svc.Register(context.Background(), "taken@example.com", "password123", "")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		svc := newTestAuthService(&mocks.MockUserStore{}, &mocks.MockJWTService{}, &mocks.MockPasswordHasher{})

		_, _, err := svc.Register(context.Background(), "not-an-email", "password123", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()

		svc := newTestAuthService(&mocks.MockUserStore{}, &mocks.MockJWTService{}, &mocks.MockPasswordHasher{})

		_, _, err := svc.Register(context.Background(), "user@example.com", "short", "")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	storedUser := &domain.User{
		ID:             userID,
		Email:          "user@example.com",
		HashedPassword: "$2a$10$hashed",
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: storedUser}
		jwtService := &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"}
		hasher := &mocks.MockPasswordHasher{}

		svc := newTestAuthService(userStore, jwtService, hasher)
		pair, err := svc.Login(context.Background(), "user@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, userID, pair.UserID)
		assert.Equal(t, "access-token", pair.AccessToken)
		assert.True(t, pair.ExpiresAt.After(time.Now()))
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		svc := newTestAuthService(userStore, &mocks.MockJWTService{}, &mocks.MockPasswordHasher{})

		_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: storedUser}
		hasher := &mocks.MockPasswordHasher{CompareErr: auth.ErrInvalidCredentials}

		svc := newTestAuthService(userStore, &mocks.MockJWTService{}, hasher)
		_, err := svc.Login(context.Background(), "user@example.com", "wrongpassword")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: &domain.User{ID: userID}}
		jwtService := &mocks.MockJWTService{
			Claims:       &auth.Claims{UserID: userID, TokenType: "refresh"},
			Token:        "new-access",
			RefreshToken: "new-refresh",
		}

		svc := newTestAuthService(userStore, jwtService, &mocks.MockPasswordHasher{})
		pair, err := svc.Refresh(context.Background(), "old-refresh-token")

		require.NoError(t, err)
		assert.Equal(t, userID, pair.UserID)
		assert.Equal(t, "new-access", pair.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Err: auth.ErrInvalidToken}
		svc := newTestAuthService(&mocks.MockUserStore{}, jwtService, &mocks.MockPasswordHasher{})

		_, err := svc.Refresh(context.Background(), "garbage")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("deleted user reads as invalid token", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: userID, TokenType: "refresh"},
		}

		svc := newTestAuthService(userStore, jwtService, &mocks.MockPasswordHasher{})
		_, err := svc.Refresh(context.Background(), "valid-but-orphaned")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
