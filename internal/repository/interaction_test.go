package repository_test

import (
	"testing"

	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/internal/repository"
	"github.com/boostbuddies/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_interactionRepository_DuplicateKey(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewInteractionRepository()

	interaction := &entity.Interaction{
		UserID:     "user1",
		PostID:     "post1",
		ActionKind: entity.ActionLike,
	}
	require.NoError(t, repo.Create(ctx, interaction))

	// The composite primary key rejects the replay at the storage level.
	err := repo.Create(ctx, &entity.Interaction{
		UserID:     "user1",
		PostID:     "post1",
		ActionKind: entity.ActionLike,
	})
	require.Error(t, err)
	require.True(t, repository.IsDuplicateKey(err))

	// Any differing key component makes a new row.
	require.NoError(t, repo.Create(ctx, &entity.Interaction{
		UserID:     "user1",
		PostID:     "post1",
		ActionKind: entity.ActionComment,
	}))
	require.NoError(t, repo.Create(ctx, &entity.Interaction{
		UserID:     "user2",
		PostID:     "post1",
		ActionKind: entity.ActionLike,
	}))

	has, err := repo.Has(ctx, "user1", "post1", entity.ActionLike)
	require.NoError(t, err)
	require.True(t, has)

	has, err = repo.Has(ctx, "user2", "post1", entity.ActionComment)
	require.NoError(t, err)
	require.False(t, has)

	count, err := repo.CountByPostID(ctx, "post1")
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func Test_postRepository_GuardedTransitions(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewPostRepository()

	post := &entity.Post{
		Base:        entity.Base{ID: "post1"},
		UserID:      "user1",
		Platform:    "instagram",
		Status:      entity.PostPending,
		LikesNeeded: 2,
	}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.IncreaseEngagement(ctx, "post1"))
	require.NoError(t, repo.Approve(ctx, "post1", 10))

	// The approval transition fires once; replays and late engagements
	// fall through to the not-found guard.
	require.Error(t, repo.Approve(ctx, "post1", 10))
	require.Error(t, repo.Reject(ctx, "post1"))
	require.Error(t, repo.IncreaseEngagement(ctx, "post1"))

	loaded, err := repo.GetByID(ctx, "post1")
	require.NoError(t, err)
	require.Equal(t, entity.PostApproved, loaded.Status)
	require.Equal(t, 1, loaded.LikesReceived)
	require.Equal(t, int64(10), loaded.PointsEarned)
}
