package store

import (
	"context"
	"database/sql"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Returns ErrEmailExists if the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists the full user row, including HashedPassword and the
	// is_influencer flag. Returns ErrUserNotFound if the user does not
	// exist and ErrEmailExists when updating to a taken email.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by ID. Returns ErrUserNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to the given transaction so multiple
	// operations can commit or roll back together.
	WithTx(tx *sql.Tx) UserStore
}
