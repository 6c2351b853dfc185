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

// MealStore implements the store.MealStore interface using a PostgreSQL
// database as the storage backend.
type MealStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMealStore creates a new PostgreSQL implementation of the MealStore
// interface.
func NewMealStore(db store.DBTX, log *slog.Logger) *MealStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &MealStore{
		db:     db,
		logger: log.With(slog.String("component", "meal_store")),
	}
}

// Ensure MealStore implements store.MealStore.
var _ store.MealStore = (*MealStore)(nil)

// WithTx implements store.MealStore.WithTx.
func (s *MealStore) WithTx(tx *sql.Tx) store.MealStore {
	return &MealStore{
		db:     tx,
		logger: s.logger,
	}
}

const mealColumns = `id, influencer_id, title, description, image_url, ingredients,
	instructions, prep_time_minutes, cook_time_minutes, servings, calories,
	protein_grams, carbs_grams, fat_grams, tags, affiliate_links, created_at, updated_at`

// mealColumnsQualified disambiguates the meal columns in joined queries.
const mealColumnsQualified = `meals.id, meals.influencer_id, meals.title, meals.description,
	meals.image_url, meals.ingredients, meals.instructions, meals.prep_time_minutes,
	meals.cook_time_minutes, meals.servings, meals.calories, meals.protein_grams,
	meals.carbs_grams, meals.fat_grams, meals.tags, meals.affiliate_links,
	meals.created_at, meals.updated_at`

// Create implements store.MealStore.Create.
func (s *MealStore) Create(ctx context.Context, meal *domain.Meal) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := meal.Validate(); err != nil {
		log.Warn("meal validation failed during create",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return err
	}

	ingredients, tags, links, err := marshalMealDocs(meal)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO meals (` + mealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		meal.ID,
		meal.InfluencerID,
		meal.Title,
		meal.Description,
		meal.ImageURL,
		ingredients,
		meal.Instructions,
		meal.PrepTimeMinutes,
		meal.CookTimeMinutes,
		meal.Servings,
		meal.Calories,
		meal.ProteinGrams,
		meal.CarbsGrams,
		meal.FatGrams,
		tags,
		links,
		meal.CreatedAt,
		meal.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("owning influencer does not exist",
				slog.String("influencer_id", meal.InfluencerID.String()))
			return store.ErrInfluencerNotFound
		}
		log.Error("failed to create meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return MapError(err)
	}

	log.Info("meal created successfully",
		slog.String("meal_id", meal.ID.String()),
		slog.String("influencer_id", meal.InfluencerID.String()))
	return nil
}

// GetByID implements store.MealStore.GetByID.
func (s *MealStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + mealColumns + ` FROM meals WHERE id = $1`
	meal, err := scanMealRow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("meal not found", slog.String("meal_id", id.String()))
			return nil, store.ErrMealNotFound
		}
		log.Error("failed to get meal by ID",
			slog.String("error", err.Error()),
			slog.String("meal_id", id.String()))
		return nil, MapError(err)
	}

	return meal, nil
}

// List implements store.MealStore.List. Results are ordered newest first
// with ID as the tiebreaker. The tag filter matches against the serialized
// JSONB tag set; the influencer filter is an exact match.
func (s *MealStore) List(
	ctx context.Context,
	params store.ListParams,
	filter store.MealListFilter,
) (store.Page[*domain.Meal], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	params = params.Normalize()

	where := ``
	args := []any{}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		where = fmt.Sprintf(`WHERE tags::text ILIKE '%%' || $%d || '%%'`, len(args))
	}
	if filter.InfluencerID != nil {
		args = append(args, *filter.InfluencerID)
		clause := fmt.Sprintf(`influencer_id = $%d`, len(args))
		if where == "" {
			where = `WHERE ` + clause
		} else {
			where += ` AND ` + clause
		}
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM meals ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count meals",
			slog.String("error", err.Error()))
		return store.Page[*domain.Meal]{}, MapError(err)
	}

	limitPos := len(args) + 1
	query := fmt.Sprintf(`
		SELECT `+mealColumns+`
		FROM meals %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, limitPos, limitPos+1)
	args = append(args, params.PerPage, params.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list meals",
			slog.String("error", err.Error()))
		return store.Page[*domain.Meal]{}, MapError(err)
	}
	defer closeRows(rows, log)

	meals, err := scanMealRows(rows)
	if err != nil {
		log.Error("failed to scan meal rows",
			slog.String("error", err.Error()))
		return store.Page[*domain.Meal]{}, err
	}

	return store.NewPage(meals, total, params), nil
}

// Update implements store.MealStore.Update. The influencer_id column is
// deliberately absent from the SET clause; ownership never changes.
func (s *MealStore) Update(ctx context.Context, meal *domain.Meal) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := meal.Validate(); err != nil {
		log.Warn("meal validation failed during update",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return err
	}

	ingredients, tags, links, err := marshalMealDocs(meal)
	if err != nil {
		return err
	}

	meal.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE meals
		SET title = $2, description = $3, image_url = $4, ingredients = $5,
			instructions = $6, prep_time_minutes = $7, cook_time_minutes = $8,
			servings = $9, calories = $10, protein_grams = $11, carbs_grams = $12,
			fat_grams = $13, tags = $14, affiliate_links = $15, updated_at = $16
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		meal.ID,
		meal.Title,
		meal.Description,
		meal.ImageURL,
		ingredients,
		meal.Instructions,
		meal.PrepTimeMinutes,
		meal.CookTimeMinutes,
		meal.Servings,
		meal.Calories,
		meal.ProteinGrams,
		meal.CarbsGrams,
		meal.FatGrams,
		tags,
		links,
		meal.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to update meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", meal.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrMealNotFound); err != nil {
		return err
	}

	log.Debug("meal updated successfully",
		slog.String("meal_id", meal.ID.String()))
	return nil
}

// Delete implements store.MealStore.Delete. Favorite edges referencing the
// meal are removed by the ON DELETE CASCADE rule on meal_favorites.
func (s *MealStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete meal",
			slog.String("error", err.Error()),
			slog.String("meal_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrMealNotFound); err != nil {
		return err
	}

	log.Info("meal deleted successfully", slog.String("meal_id", id.String()))
	return nil
}

func marshalMealDocs(meal *domain.Meal) (ingredients, tags, links []byte, err error) {
	if ingredients, err = marshalJSONB(meal.Ingredients); err != nil {
		return nil, nil, nil, err
	}
	if tags, err = marshalJSONB(meal.Tags); err != nil {
		return nil, nil, nil, err
	}
	if links, err = marshalJSONB(meal.AffiliateLinks); err != nil {
		return nil, nil, nil, err
	}
	return ingredients, tags, links, nil
}

func scanMealRow(row rowScanner) (*domain.Meal, error) {
	var meal domain.Meal
	var ingredients, tags, links []byte

	err := row.Scan(
		&meal.ID,
		&meal.InfluencerID,
		&meal.Title,
		&meal.Description,
		&meal.ImageURL,
		&ingredients,
		&meal.Instructions,
		&meal.PrepTimeMinutes,
		&meal.CookTimeMinutes,
		&meal.Servings,
		&meal.Calories,
		&meal.ProteinGrams,
		&meal.CarbsGrams,
		&meal.FatGrams,
		&tags,
		&links,
		&meal.CreatedAt,
		&meal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	meal.Ingredients = []domain.Ingredient{}
	meal.Tags = []string{}
	meal.AffiliateLinks = []domain.AffiliateLink{}
	if err := unmarshalJSONB(ingredients, &meal.Ingredients); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(tags, &meal.Tags); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(links, &meal.AffiliateLinks); err != nil {
		return nil, err
	}

	return &meal, nil
}

func scanMealRows(rows *sql.Rows) ([]*domain.Meal, error) {
	meals := []*domain.Meal{}
	for rows.Next() {
		meal, err := scanMealRow(rows)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return meals, nil
}
