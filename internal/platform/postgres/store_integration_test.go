package postgres_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/platform/postgres"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/fitfoodie/fitfoodie-api/internal/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestUser inserts a user with a unique email and returns it.
func createTestUser(t *testing.T, db *sql.DB, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(email, "password1234")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$notarealhashbutlongenough"
	user.Password = ""

	require.NoError(t, postgres.NewUserStore(db, testLogger()).Create(context.Background(), user))
	return user
}

// createTestInfluencer inserts an influencer profile for the user.
func createTestInfluencer(t *testing.T, db *sql.DB, userID uuid.UUID) *domain.Influencer {
	t.Helper()

	influencer, err := domain.NewInfluencer(userID, "strength", nil)
	require.NoError(t, err)
	require.NoError(t, postgres.NewInfluencerStore(db, testLogger()).Create(context.Background(), influencer))
	return influencer
}

// createTestMeal inserts a meal owned by the influencer.
func createTestMeal(t *testing.T, db *sql.DB, influencerID uuid.UUID, title string) *domain.Meal {
	t.Helper()

	meal, err := domain.NewMeal(influencerID, domain.MealFields{
		Title:       title,
		Description: "integration test meal",
		Tags:        []string{"test"},
	})
	require.NoError(t, err)
	require.NoError(t, postgres.NewMealStore(db, testLogger()).Create(context.Background(), meal))
	return meal
}

func TestUserStoreCRUD(t *testing.T) {
	db := testdb.New(t)
	testdb.Reset(t, db)

	ctx := context.Background()
	userStore := postgres.NewUserStore(db, testLogger())
	user := createTestUser(t, db, "crud@example.com")

	t.Run("get by id", func(t *testing.T) {
		got, err := userStore.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		assert.False(t, got.IsInfluencer)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := userStore.GetByEmail(ctx, "crud@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup, err := domain.NewUser("crud@example.com", "password1234")
		require.NoError(t, err)
		dup.HashedPassword = "$2a$10$notarealhashbutlongenough"
		dup.Password = ""

		err = userStore.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("update", func(t *testing.T) {
		user.Name = "Updated Name"
		height := 175.0
		user.HeightCm = &height
		user.DietaryPreferences = []string{"vegan"}
		require.NoError(t, userStore.Update(ctx, user))

		got, err := userStore.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated Name", got.Name)
		require.NotNil(t, got.HeightCm)
		assert.Equal(t, 175.0, *got.HeightCm)
		assert.Equal(t, []string{"vegan"}, got.DietaryPreferences)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, userStore.Delete(ctx, user.ID))

		_, err := userStore.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := userStore.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestInfluencerProfileCreationIsAtomic(t *testing.T) {
	db := testdb.New(t)
	testdb.Reset(t, db)

	ctx := context.Background()
	userStore := postgres.NewUserStore(db, testLogger())
	influencerStore := postgres.NewInfluencerStore(db, testLogger())
	user := createTestUser(t, db, "influencer@example.com")

	influencer, err := domain.NewInfluencer(user.ID, "keto", map[string]string{
		"instagram": "https://instagram.com/ketoqueen",
	})
	require.NoError(t, err)

	err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if err := influencerStore.WithTx(tx).Create(ctx, influencer); err != nil {
			return err
		}
		user.IsInfluencer = true
		return userStore.WithTx(tx).Update(ctx, user)
	})
	require.NoError(t, err)

	got, err := userStore.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsInfluencer)

	profile, err := influencerStore.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "keto", profile.Specialty)
	assert.Equal(t, "https://instagram.com/ketoqueen", profile.SocialMediaLinks["instagram"])

	t.Run("second profile rejected", func(t *testing.T) {
		second, err := domain.NewInfluencer(user.ID, "paleo", nil)
		require.NoError(t, err)

		err = influencerStore.Create(ctx, second)
		assert.ErrorIs(t, err, store.ErrInfluencerExists)
	})
}

func TestMealStoreListPagination(t *testing.T) {
	db := testdb.New(t)
	testdb.Reset(t, db)

	ctx := context.Background()
	mealStore := postgres.NewMealStore(db, testLogger())

	user := createTestUser(t, db, "chef@example.com")
	influencer := createTestInfluencer(t, db, user.ID)

	for i := 0; i < 5; i++ {
		createTestMeal(t, db, influencer.ID, "Meal "+uuid.NewString()[:8])
	}

	page, err := mealStore.List(ctx, store.ListParams{Page: 1, PerPage: 2}, store.MealListFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 1, page.CurrentPage)

	last, err := mealStore.List(ctx, store.ListParams{Page: 3, PerPage: 2}, store.MealListFilter{})
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)

	t.Run("influencer filter", func(t *testing.T) {
		other := createTestUser(t, db, "other@example.com")
		otherInfluencer := createTestInfluencer(t, db, other.ID)
		createTestMeal(t, db, otherInfluencer.ID, "Someone else's meal")

		page, err := mealStore.List(ctx, store.ListParams{Page: 1, PerPage: 10}, store.MealListFilter{
			InfluencerID: &otherInfluencer.ID,
		})
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("tag filter", func(t *testing.T) {
		page, err := mealStore.List(ctx, store.ListParams{Page: 1, PerPage: 10}, store.MealListFilter{
			Tag: "test",
		})
		require.NoError(t, err)
		assert.Equal(t, 6, page.Total)
	})
}

func TestFavoriteEdges(t *testing.T) {
	db := testdb.New(t)
	testdb.Reset(t, db)

	ctx := context.Background()
	favoriteStore := postgres.NewFavoriteStore(db, testLogger())

	user := createTestUser(t, db, "fan@example.com")
	chef := createTestUser(t, db, "chef@example.com")
	influencer := createTestInfluencer(t, db, chef.ID)
	meal := createTestMeal(t, db, influencer.ID, "Favorite Me")

	require.NoError(t, favoriteStore.Favorite(ctx, user.ID, meal.ID))

	t.Run("duplicate favorite", func(t *testing.T) {
		err := favoriteStore.Favorite(ctx, user.ID, meal.ID)
		assert.ErrorIs(t, err, store.ErrAlreadyFavorited)
	})

	t.Run("listed for the user", func(t *testing.T) {
		meals, err := favoriteStore.ListFavorites(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, meals, 1)
		assert.Equal(t, meal.ID, meals[0].ID)
	})

	t.Run("is favorited", func(t *testing.T) {
		favorited, err := favoriteStore.IsFavorited(ctx, user.ID, meal.ID)
		require.NoError(t, err)
		assert.True(t, favorited)
	})

	t.Run("unfavorite", func(t *testing.T) {
		require.NoError(t, favoriteStore.Unfavorite(ctx, user.ID, meal.ID))

		err := favoriteStore.Unfavorite(ctx, user.ID, meal.ID)
		assert.ErrorIs(t, err, store.ErrNotFavorited)
	})

	t.Run("favorite missing meal", func(t *testing.T) {
		err := favoriteStore.Favorite(ctx, user.ID, uuid.New())
		assert.ErrorIs(t, err, store.ErrMealNotFound)
	})
}

func TestFollowEdges(t *testing.T) {
	db := testdb.New(t)
	testdb.Reset(t, db)

	ctx := context.Background()
	followStore := postgres.NewFollowStore(db, testLogger())

	user := createTestUser(t, db, "fan@example.com")
	chef := createTestUser(t, db, "chef@example.com")
	influencer := createTestInfluencer(t, db, chef.ID)

	require.NoError(t, followStore.Follow(ctx, user.ID, influencer.ID))

	t.Run("duplicate follow", func(t *testing.T) {
		err := followStore.Follow(ctx, user.ID, influencer.ID)
		assert.ErrorIs(t, err, store.ErrAlreadyFollowing)
	})

	t.Run("listed for the user", func(t *testing.T) {
		influencers, err := followStore.ListFollowing(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, influencers, 1)
		assert.Equal(t, influencer.ID, influencers[0].ID)
	})

	t.Run("unfollow", func(t *testing.T) {
		require.NoError(t, followStore.Unfollow(ctx, user.ID, influencer.ID))

		err := followStore.Unfollow(ctx, user.ID, influencer.ID)
		assert.ErrorIs(t, err, store.ErrNotFollowing)
	})
}
