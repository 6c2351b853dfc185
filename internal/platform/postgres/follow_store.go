package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/platform/logger"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// FollowStore implements the store.FollowStore interface using a
// PostgreSQL database as the storage backend. The (user_id, influencer_id)
// composite primary key makes duplicate detection atomic.
type FollowStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewFollowStore creates a new PostgreSQL implementation of the
// FollowStore interface.
func NewFollowStore(db store.DBTX, log *slog.Logger) *FollowStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &FollowStore{
		db:     db,
		logger: log.With(slog.String("component", "follow_store")),
	}
}

// Ensure FollowStore implements store.FollowStore.
var _ store.FollowStore = (*FollowStore)(nil)

// WithTx implements store.FollowStore.WithTx.
func (s *FollowStore) WithTx(tx *sql.Tx) store.FollowStore {
	return &FollowStore{
		db:     tx,
		logger: s.logger,
	}
}

// Follow implements store.FollowStore.Follow.
func (s *FollowStore) Follow(ctx context.Context, userID, influencerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO influencer_follows (user_id, influencer_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, userID, influencerID, time.Now().UTC())
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("already following influencer",
				slog.String("user_id", userID.String()),
				slog.String("influencer_id", influencerID.String()))
			return MapUniqueViolation(err, store.ErrAlreadyFollowing)
		}
		if IsForeignKeyViolation(err) {
			return store.ErrInfluencerNotFound
		}
		log.Error("failed to follow influencer",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("influencer_id", influencerID.String()))
		return MapError(err)
	}

	log.Info("influencer followed",
		slog.String("user_id", userID.String()),
		slog.String("influencer_id", influencerID.String()))
	return nil
}

// Unfollow implements store.FollowStore.Unfollow.
func (s *FollowStore) Unfollow(ctx context.Context, userID, influencerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM influencer_follows WHERE user_id = $1 AND influencer_id = $2`
	result, err := s.db.ExecContext(ctx, query, userID, influencerID)
	if err != nil {
		log.Error("failed to unfollow influencer",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("influencer_id", influencerID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrNotFollowing); err != nil {
		return err
	}

	log.Info("influencer unfollowed",
		slog.String("user_id", userID.String()),
		slog.String("influencer_id", influencerID.String()))
	return nil
}

// ListFollowing implements store.FollowStore.ListFollowing. Influencers
// are ordered by when the user followed them, most recent first.
func (s *FollowStore) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*domain.Influencer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT i.id, i.user_id, i.specialty, i.social_media_links, i.created_at, i.updated_at
		FROM influencers i
		JOIN influencer_follows f ON f.influencer_id = i.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, i.id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list following",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer closeRows(rows, log)

	influencers, err := scanInfluencerRows(rows)
	if err != nil {
		log.Error("failed to scan followed influencer rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return influencers, nil
}
