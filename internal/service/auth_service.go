package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/service/auth"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// TokenPair bundles the credentials returned by authentication operations.
type TokenPair struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthService provides registration, login, and token refresh.
type AuthService interface {
	// Register creates a new user account and returns it with a fresh
	// token pair. Returns store.ErrEmailExists if the email is taken and
	// domain validation errors for a malformed email or password.
	Register(ctx context.Context, email, password, name string) (*domain.User, *TokenPair, error)

	// Login verifies the credentials and returns a fresh token pair.
	// Returns auth.ErrInvalidCredentials on an unknown email or wrong
	// password, without distinguishing the two.
	Login(ctx context.Context, email, password string) (*TokenPair, error)

	// Refresh validates a refresh token and issues a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// authService implements AuthService.
type authService struct {
	userStore      store.UserStore
	jwtService     auth.JWTService
	hasher         auth.PasswordHasher
	verifier       auth.PasswordVerifier
	accessLifetime time.Duration
	logger         *slog.Logger
}

// NewAuthService creates a new AuthService. accessLifetime is the access
// token lifetime, used to report expiry to clients.
func NewAuthService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	accessLifetime time.Duration,
	log *slog.Logger,
) AuthService {
	return &authService{
		userStore:      userStore,
		jwtService:     jwtService,
		hasher:         hasher,
		verifier:       verifier,
		accessLifetime: accessLifetime,
		logger:         log.With(slog.String("component", "auth_service")),
	}
}

// Register implements AuthService.Register.
func (s *authService) Register(
	ctx context.Context,
	email, password, name string,
) (*domain.User, *TokenPair, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		return nil, nil, err
	}
	user.Name = name

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password during registration",
			"error", err)
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	// The unique constraint on email is the source of truth for
	// duplicates; no check-then-insert race here.
	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("registration rejected, email exists")
			return nil, nil, err
		}
		s.logger.Error("failed to create user",
			"error", err)
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, pair, nil
}

// Login implements AuthService.Login.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same failure as a wrong password; do not leak which
			// emails are registered.
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("password verification failed", "user_id", user.ID)
		return nil, auth.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return pair, nil
}

// Refresh implements AuthService.Refresh.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	// The user may have been deleted since the token was issued.
	if _, err := s.userStore.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	pair, err := s.issueTokens(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("tokens refreshed", "user_id", claims.UserID)
	return pair, nil
}

// issueTokens generates a fresh access/refresh pair for the user.
func (s *authService) issueTokens(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	access, err := s.jwtService.GenerateToken(ctx, userID)
	if err != nil {
		s.logger.Error("failed to generate access token",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.jwtService.GenerateRefreshToken(ctx, userID)
	if err != nil {
		s.logger.Error("failed to generate refresh token",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		UserID:       userID,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().UTC().Add(s.accessLifetime),
	}, nil
}
