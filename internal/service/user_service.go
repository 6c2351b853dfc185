package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/service/auth"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// UserService provides account operations for the authenticated user.
type UserService interface {
	// GetProfile retrieves a user's profile.
	// Returns store.ErrUserNotFound if the user is absent.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateProfile applies a sparse update to the user's profile and
	// returns the updated user. Absent fields are untouched.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update domain.UserProfileUpdate) (*domain.User, error)

	// ListFavorites returns the meals the user has favorited.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)

	// ListFollowing returns the influencers the user follows.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]*domain.Influencer, error)

	// ChangePassword replaces the user's password after verifying the
	// current one. Returns auth.ErrInvalidCredentials if currentPassword
	// does not verify; the stored hash is left unchanged in that case.
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// userService implements UserService.
type userService struct {
	userStore     store.UserStore
	favoriteStore store.FavoriteStore
	followStore   store.FollowStore
	hasher        auth.PasswordHasher
	verifier      auth.PasswordVerifier
	logger        *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	favoriteStore store.FavoriteStore,
	followStore store.FollowStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) UserService {
	return &userService{
		userStore:     userStore,
		favoriteStore: favoriteStore,
		followStore:   followStore,
		hasher:        hasher,
		verifier:      verifier,
		logger:        log.With(slog.String("component", "user_service")),
	}
}

// GetProfile implements UserService.GetProfile.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userStore.GetByID(ctx, userID)
}

// UpdateProfile implements UserService.UpdateProfile.
func (s *userService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update domain.UserProfileUpdate,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Apply(update)

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user profile",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	s.logger.Debug("user profile updated", "user_id", userID)
	return user, nil
}

// ListFavorites implements UserService.ListFavorites.
func (s *userService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.favoriteStore.ListFavorites(ctx, userID)
}

// ListFollowing implements UserService.ListFollowing.
func (s *userService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*domain.Influencer, error) {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followStore.ListFollowing(ctx, userID)
}

// ChangePassword implements UserService.ChangePassword.
func (s *userService) ChangePassword(
	ctx context.Context,
	userID uuid.UUID,
	currentPassword, newPassword string,
) error {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.verifier.Compare(user.HashedPassword, currentPassword); err != nil {
		s.logger.Debug("current password verification failed",
			"user_id", userID)
		return auth.ErrInvalidCredentials
	}

	// Validate the new password against the same rules as registration.
	if len(newPassword) < 8 {
		return domain.ErrPasswordTooShort
	}
	if len(newPassword) > 72 {
		return domain.ErrPasswordTooLong
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error("failed to hash new password",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.HashedPassword = hashed
	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to persist new password",
			"error", err,
			"user_id", userID)
		return err
	}

	s.logger.Info("password changed", "user_id", userID)
	return nil
}
