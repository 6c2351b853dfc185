package service_test

import (
	"context"
	"testing"

	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/mocks"
	"github.com/fitfoodie/fitfoodie-api/internal/service"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInfluencerService(
	userStore *mocks.MockUserStore,
	influencerStore *mocks.MockInfluencerStore,
	followStore *mocks.MockFollowStore,
) service.InfluencerService {
	// Profile creation needs a real transaction and is covered by
	// integration tests; everything else never touches the *sql.DB.
	return service.NewInfluencerService(nil, userStore, influencerStore, followStore, testLogger())
}

func TestInfluencerServiceList(t *testing.T) {
	t.Parallel()

	page := store.Page[*domain.Influencer]{
		Items:       []*domain.Influencer{{ID: uuid.New(), Specialty: "keto"}},
		Total:       1,
		Pages:       1,
		CurrentPage: 1,
	}

	var gotFilter store.InfluencerListFilter
	influencerStore := &mocks.MockInfluencerStore{
		ListFn: func(ctx context.Context, params store.ListParams, filter store.InfluencerListFilter) (store.Page[*domain.Influencer], error) {
			gotFilter = filter
			return page, nil
		},
	}

	svc := newTestInfluencerService(&mocks.MockUserStore{}, influencerStore, &mocks.MockFollowStore{})
	got, err := svc.List(context.Background(), store.ListParams{Page: 1, PerPage: 10}, "keto")

	require.NoError(t, err)
	assert.Equal(t, page, got)
	assert.Equal(t, "keto", gotFilter.Specialty)
}

func TestInfluencerServiceGet(t *testing.T) {
	t.Parallel()

	influencerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		influencerStore := &mocks.MockInfluencerStore{Influencer: &domain.Influencer{ID: influencerID}}
		svc := newTestInfluencerService(&mocks.MockUserStore{}, influencerStore, &mocks.MockFollowStore{})

		got, err := svc.Get(context.Background(), influencerID)
		require.NoError(t, err)
		assert.Equal(t, influencerID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		influencerStore := &mocks.MockInfluencerStore{Err: store.ErrInfluencerNotFound}
		svc := newTestInfluencerService(&mocks.MockUserStore{}, influencerStore, &mocks.MockFollowStore{})

		_, err := svc.Get(context.Background(), influencerID)
		assert.ErrorIs(t, err, store.ErrInfluencerNotFound)
	})
}

func TestInfluencerServiceUpdateProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var persisted *domain.Influencer
		influencerStore := &mocks.MockInfluencerStore{
			Influencer: &domain.Influencer{ID: uuid.New(), UserID: userID, Specialty: "old"},
			UpdateFn: func(ctx context.Context, influencer *domain.Influencer) error {
				persisted = influencer
				return nil
			},
		}

		svc := newTestInfluencerService(&mocks.MockUserStore{}, influencerStore, &mocks.MockFollowStore{})

		specialty := "powerlifting nutrition"
		influencer, err := svc.UpdateProfile(context.Background(), userID, domain.InfluencerProfileUpdate{
			Specialty: &specialty,
		})

		require.NoError(t, err)
		assert.Equal(t, "powerlifting nutrition", influencer.Specialty)
		require.NotNil(t, persisted)
		assert.Equal(t, "powerlifting nutrition", persisted.Specialty)
	})

	t.Run("no profile", func(t *testing.T) {
		t.Parallel()

		influencerStore := &mocks.MockInfluencerStore{Err: store.ErrInfluencerNotFound}
		svc := newTestInfluencerService(&mocks.MockUserStore{}, influencerStore, &mocks.MockFollowStore{})

		specialty := "anything"
		_, err := svc.UpdateProfile(context.Background(), userID, domain.InfluencerProfileUpdate{
			Specialty: &specialty,
		})
		assert.ErrorIs(t, err, store.ErrInfluencerNotFound)
	})
}

func TestInfluencerServiceFollow(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	influencerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: &domain.User{ID: userID}}
		influencerStore := &mocks.MockInfluencerStore{Influencer: &domain.Influencer{ID: influencerID}}
		svc := newTestInfluencerService(userStore, influencerStore, &mocks.MockFollowStore{})

		assert.NoError(t, svc.Follow(context.Background(), userID, influencerID))
	})

	t.Run("already following", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: &domain.User{ID: userID}}
		influencerStore := &mocks.MockInfluencerStore{Influencer: &domain.Influencer{ID: influencerID}}
		followStore := &mocks.MockFollowStore{Err: store.ErrAlreadyFollowing}
		svc := newTestInfluencerService(userStore, influencerStore, followStore)

		err := svc.Follow(context.Background(), userID, influencerID)
		assert.ErrorIs(t, err, store.ErrAlreadyFollowing)
	})

	t.Run("missing influencer", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: &domain.User{ID: userID}}
		influencerStore := &mocks.MockInfluencerStore{Err: store.ErrInfluencerNotFound}
		svc := newTestInfluencerService(userStore, influencerStore, &mocks.MockFollowStore{})

		err := svc.Follow(context.Background(), userID, influencerID)
		assert.ErrorIs(t, err, store.ErrInfluencerNotFound)
	})
}

func TestInfluencerServiceUnfollow(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	influencerID := uuid.New()

	userStore := &mocks.MockUserStore{User: &domain.User{ID: userID}}
	influencerStore := &mocks.MockInfluencerStore{Influencer: &domain.Influencer{ID: influencerID}}
	followStore := &mocks.MockFollowStore{Err: store.ErrNotFollowing}
	svc := newTestInfluencerService(userStore, influencerStore, followStore)

	err := svc.Unfollow(context.Background(), userID, influencerID)
	assert.ErrorIs(t, err, store.ErrNotFollowing)
}
