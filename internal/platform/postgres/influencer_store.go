package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/platform/logger"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// InfluencerStore implements the store.InfluencerStore interface using a
// PostgreSQL database as the storage backend.
type InfluencerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewInfluencerStore creates a new PostgreSQL implementation of the
// InfluencerStore interface.
func NewInfluencerStore(db store.DBTX, log *slog.Logger) *InfluencerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &InfluencerStore{
		db:     db,
		logger: log.With(slog.String("component", "influencer_store")),
	}
}

// Ensure InfluencerStore implements store.InfluencerStore.
var _ store.InfluencerStore = (*InfluencerStore)(nil)

// WithTx implements store.InfluencerStore.WithTx.
func (s *InfluencerStore) WithTx(tx *sql.Tx) store.InfluencerStore {
	return &InfluencerStore{
		db:     tx,
		logger: s.logger,
	}
}

const influencerColumns = `id, user_id, specialty, social_media_links, created_at, updated_at`

// Create implements store.InfluencerStore.Create.
// Returns store.ErrInfluencerExists if the user already has a profile; the
// unique index on user_id makes the duplicate check atomic.
func (s *InfluencerStore) Create(ctx context.Context, influencer *domain.Influencer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := influencer.Validate(); err != nil {
		log.Warn("influencer validation failed during create",
			slog.String("error", err.Error()),
			slog.String("influencer_id", influencer.ID.String()))
		return err
	}

	links, err := marshalJSONB(influencer.SocialMediaLinks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO influencers (` + influencerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		influencer.ID,
		influencer.UserID,
		influencer.Specialty,
		links,
		influencer.CreatedAt,
		influencer.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("user already has an influencer profile",
				slog.String("user_id", influencer.UserID.String()))
			return MapUniqueViolation(err, store.ErrInfluencerExists)
		}
		if IsForeignKeyViolation(err) {
			return store.ErrUserNotFound
		}
		log.Error("failed to create influencer",
			slog.String("error", err.Error()),
			slog.String("influencer_id", influencer.ID.String()))
		return MapError(err)
	}

	log.Info("influencer created successfully",
		slog.String("influencer_id", influencer.ID.String()),
		slog.String("user_id", influencer.UserID.String()))
	return nil
}

// GetByID implements store.InfluencerStore.GetByID.
func (s *InfluencerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers WHERE id = $1`
	return s.getOne(ctx, query, id)
}

// GetByUserID implements store.InfluencerStore.GetByUserID.
func (s *InfluencerStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers WHERE user_id = $1`
	return s.getOne(ctx, query, userID)
}

func (s *InfluencerStore) getOne(ctx context.Context, query string, arg any) (*domain.Influencer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	influencer, err := scanInfluencerRow(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrInfluencerNotFound
		}
		log.Error("failed to get influencer",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return influencer, nil
}

// List implements store.InfluencerStore.List. Results are ordered newest
// first with ID as the tiebreaker; the specialty filter is a
// case-insensitive substring match.
func (s *InfluencerStore) List(
	ctx context.Context,
	params store.ListParams,
	filter store.InfluencerListFilter,
) (store.Page[*domain.Influencer], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	params = params.Normalize()

	where := ``
	args := []any{}
	if filter.Specialty != "" {
		where = `WHERE specialty ILIKE '%' || $1 || '%'`
		args = append(args, filter.Specialty)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM influencers ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count influencers",
			slog.String("error", err.Error()))
		return store.Page[*domain.Influencer]{}, MapError(err)
	}

	limitPos := len(args) + 1
	query := fmt.Sprintf(`
		SELECT `+influencerColumns+`
		FROM influencers %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, limitPos, limitPos+1)
	args = append(args, params.PerPage, params.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list influencers",
			slog.String("error", err.Error()))
		return store.Page[*domain.Influencer]{}, MapError(err)
	}
	defer closeRows(rows, log)

	influencers, err := scanInfluencerRows(rows)
	if err != nil {
		log.Error("failed to scan influencer rows",
			slog.String("error", err.Error()))
		return store.Page[*domain.Influencer]{}, err
	}

	return store.NewPage(influencers, total, params), nil
}

// Update implements store.InfluencerStore.Update.
func (s *InfluencerStore) Update(ctx context.Context, influencer *domain.Influencer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := influencer.Validate(); err != nil {
		log.Warn("influencer validation failed during update",
			slog.String("error", err.Error()),
			slog.String("influencer_id", influencer.ID.String()))
		return err
	}

	links, err := marshalJSONB(influencer.SocialMediaLinks)
	if err != nil {
		return err
	}

	influencer.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE influencers
		SET specialty = $2, social_media_links = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		influencer.ID,
		influencer.Specialty,
		links,
		influencer.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to update influencer",
			slog.String("error", err.Error()),
			slog.String("influencer_id", influencer.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrInfluencerNotFound); err != nil {
		return err
	}

	log.Debug("influencer updated successfully",
		slog.String("influencer_id", influencer.ID.String()))
	return nil
}

// rowScanner matches both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInfluencerRow(row rowScanner) (*domain.Influencer, error) {
	var influencer domain.Influencer
	var links []byte

	err := row.Scan(
		&influencer.ID,
		&influencer.UserID,
		&influencer.Specialty,
		&links,
		&influencer.CreatedAt,
		&influencer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	influencer.SocialMediaLinks = map[string]string{}
	if err := unmarshalJSONB(links, &influencer.SocialMediaLinks); err != nil {
		return nil, err
	}

	return &influencer, nil
}

func scanInfluencerRows(rows *sql.Rows) ([]*domain.Influencer, error) {
	influencers := []*domain.Influencer{}
	for rows.Next() {
		influencer, err := scanInfluencerRow(rows)
		if err != nil {
			return nil, err
		}
		influencers = append(influencers, influencer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return influencers, nil
}
