package store

import (
	"context"
	"database/sql"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/google/uuid"
)

// InfluencerListFilter narrows an influencer listing. An empty Specialty
// matches everything; otherwise it is a case-insensitive substring match.
type InfluencerListFilter struct {
	Specialty string
}

// InfluencerStore defines the interface for influencer profile persistence.
type InfluencerStore interface {
	// Create saves a new influencer profile. Returns ErrInfluencerExists if
	// the user already has one (unique user_id constraint).
	Create(ctx context.Context, influencer *domain.Influencer) error

	// GetByID retrieves an influencer by ID.
	// Returns ErrInfluencerNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Influencer, error)

	// GetByUserID retrieves the influencer profile belonging to a user.
	// Returns ErrInfluencerNotFound if the user has no profile.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error)

	// List returns a page of influencers ordered newest-created first,
	// ties broken by ID, applying the filter when set.
	List(ctx context.Context, params ListParams, filter InfluencerListFilter) (Page[*domain.Influencer], error)

	// Update persists the full influencer row.
	// Returns ErrInfluencerNotFound if absent.
	Update(ctx context.Context, influencer *domain.Influencer) error

	// WithTx returns an InfluencerStore bound to the given transaction.
	WithTx(tx *sql.Tx) InfluencerStore
}

// FollowStore manages the user -> influencer follow edge set. Duplicate
// detection relies on the composite primary key, not read-then-write.
type FollowStore interface {
	// Follow inserts a follow edge.
	// Returns ErrAlreadyFollowing if the edge exists.
	Follow(ctx context.Context, userID, influencerID uuid.UUID) error

	// Unfollow removes a follow edge.
	// Returns ErrNotFollowing if the edge does not exist.
	Unfollow(ctx context.Context, userID, influencerID uuid.UUID) error

	// ListFollowing returns the influencers a user follows, newest edge first.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]*domain.Influencer, error)

	// WithTx returns a FollowStore bound to the given transaction.
	WithTx(tx *sql.Tx) FollowStore
}
