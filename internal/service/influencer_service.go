package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// InfluencerService provides influencer profile management and the
// follow/unfollow relationship toggles.
type InfluencerService interface {
	// List returns a page of influencers, optionally filtered by a
	// specialty substring, ordered newest first.
	List(ctx context.Context, params store.ListParams, specialty string) (store.Page[*domain.Influencer], error)

	// Get retrieves an influencer by ID.
	// Returns store.ErrInfluencerNotFound if absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.Influencer, error)

	// CreateProfile creates the acting user's influencer profile and flips
	// their is_influencer flag, atomically. Returns
	// store.ErrInfluencerExists if the user already has a profile.
	CreateProfile(ctx context.Context, userID uuid.UUID, specialty string, links map[string]string) (*domain.Influencer, error)

	// UpdateProfile applies a sparse update to the acting user's profile.
	// Returns store.ErrInfluencerNotFound if the user has none.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update domain.InfluencerProfileUpdate) (*domain.Influencer, error)

	// Follow adds a follow edge from the user to the influencer. Returns
	// store.ErrAlreadyFollowing if the edge exists, or a not-found error
	// if either side is absent.
	Follow(ctx context.Context, userID, influencerID uuid.UUID) error

	// Unfollow removes the follow edge. Returns store.ErrNotFollowing if
	// the edge does not exist.
	Unfollow(ctx context.Context, userID, influencerID uuid.UUID) error
}

// influencerService implements InfluencerService.
type influencerService struct {
	db              *sql.DB
	userStore       store.UserStore
	influencerStore store.InfluencerStore
	followStore     store.FollowStore
	logger          *slog.Logger
}

// NewInfluencerService creates a new InfluencerService. The *sql.DB is
// used to run profile creation in a single transaction.
func NewInfluencerService(
	db *sql.DB,
	userStore store.UserStore,
	influencerStore store.InfluencerStore,
	followStore store.FollowStore,
	log *slog.Logger,
) InfluencerService {
	return &influencerService{
		db:              db,
		userStore:       userStore,
		influencerStore: influencerStore,
		followStore:     followStore,
		logger:          log.With(slog.String("component", "influencer_service")),
	}
}

// List implements InfluencerService.List.
func (s *influencerService) List(
	ctx context.Context,
	params store.ListParams,
	specialty string,
) (store.Page[*domain.Influencer], error) {
	return s.influencerStore.List(ctx, params, store.InfluencerListFilter{Specialty: specialty})
}

// Get implements InfluencerService.Get.
func (s *influencerService) Get(ctx context.Context, id uuid.UUID) (*domain.Influencer, error) {
	return s.influencerStore.GetByID(ctx, id)
}

// CreateProfile implements InfluencerService.CreateProfile. The profile
// insert and the user's is_influencer flag flip commit together or not at
// all; the unique constraint on user_id rejects a concurrent duplicate.
func (s *influencerService) CreateProfile(
	ctx context.Context,
	userID uuid.UUID,
	specialty string,
	links map[string]string,
) (*domain.Influencer, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	influencer, err := domain.NewInfluencer(userID, specialty, links)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.influencerStore.WithTx(tx).Create(ctx, influencer); err != nil {
			return err
		}

		user.IsInfluencer = true
		return s.userStore.WithTx(tx).Update(ctx, user)
	})
	if err != nil {
		s.logger.Debug("failed to create influencer profile",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	s.logger.Info("influencer profile created",
		"influencer_id", influencer.ID,
		"user_id", userID)
	return influencer, nil
}

// UpdateProfile implements InfluencerService.UpdateProfile.
func (s *influencerService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update domain.InfluencerProfileUpdate,
) (*domain.Influencer, error) {
	influencer, err := s.influencerStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	influencer.Apply(update)

	if err := s.influencerStore.Update(ctx, influencer); err != nil {
		s.logger.Error("failed to update influencer profile",
			"error", err,
			"influencer_id", influencer.ID)
		return nil, err
	}

	s.logger.Debug("influencer profile updated", "influencer_id", influencer.ID)
	return influencer, nil
}

// Follow implements InfluencerService.Follow. Both sides are looked up
// first so a missing user or influencer reads as 404 rather than a
// constraint failure; the duplicate check itself stays atomic in the
// edge insert.
func (s *influencerService) Follow(ctx context.Context, userID, influencerID uuid.UUID) error {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.influencerStore.GetByID(ctx, influencerID); err != nil {
		return err
	}

	return s.followStore.Follow(ctx, userID, influencerID)
}

// Unfollow implements InfluencerService.Unfollow.
func (s *influencerService) Unfollow(ctx context.Context, userID, influencerID uuid.UUID) error {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.influencerStore.GetByID(ctx, influencerID); err != nil {
		return err
	}

	return s.followStore.Unfollow(ctx, userID, influencerID)
}
