package domain

import (
	"testing"

	"github.com/boostbuddies/backend/internal/domain/statistic"
	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/internal/model"
	"github.com/boostbuddies/backend/internal/repository"
	"github.com/boostbuddies/backend/pkg/errorx"
	"github.com/boostbuddies/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestPostDomain(t *testing.T) *postDomain {
	return NewPostDomain(
		repository.NewPostRepository(),
		repository.NewUserRepository(),
		repository.NewPointsHistoryRepository(),
		statistic.New(repository.NewUserRepository(), testutil.MockRedisClient(t)),
	)
}

func Test_postDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureContext(ctx)
	d := newTestPostDomain(t)

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Create(authorizedCtx, &model.CreatePostRequest{
		Platform: "instagram",
		URL:      "https://instagram.com/p/abc",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", resp.Status)

	post, err := repository.NewPostRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, post.UserID)
	require.Equal(t, entity.PostPending, post.Status)
	require.Equal(t, 10, post.LikesNeeded) // default threshold from configs
	require.Equal(t, 0, post.LikesReceived)

	// An explicit threshold wins over the default.
	resp, err = d.Create(authorizedCtx, &model.CreatePostRequest{
		Platform:    "tiktok",
		URL:         "https://tiktok.com/@user1/video/2",
		LikesNeeded: 3,
	})
	require.NoError(t, err)

	post, err = repository.NewPostRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, 3, post.LikesNeeded)

	_, err = d.Create(authorizedCtx, &model.CreatePostRequest{URL: "https://x.com/p/1"})
	require.Error(t, err)
	require.Equal(t, "Not allow empty platform", err.Error())
}

func Test_postDomain_Create_Premium(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureContext(ctx)
	d := newTestPostDomain(t)

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.PremiumUser.ID)
	resp, err := d.Create(authorizedCtx, &model.CreatePostRequest{
		Platform: "instagram",
		URL:      "https://instagram.com/p/premium",
	})
	require.NoError(t, err)
	require.Equal(t, "approved", resp.Status)

	post, err := repository.NewPostRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PostApproved, post.Status)
	require.False(t, post.ApprovedAt.IsZero())

	// Auto approval rewards nobody.
	user, err := repository.NewUserRepository().GetByID(ctx, testutil.PremiumUser.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), user.Points)

	history, err := repository.NewPointsHistoryRepository().
		GetListByUserID(ctx, testutil.PremiumUser.ID, 0, 10)
	require.NoError(t, err)
	require.Empty(t, history)
}

func Test_postDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureContext(ctx)
	d := newTestPostDomain(t)

	resp, err := d.GetList(ctx, &model.GetListPostsRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	require.Equal(t, testutil.Post1.ID, resp.Posts[0].ID)

	resp, err = d.GetList(ctx, &model.GetListPostsRequest{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 2)

	_, err = d.GetList(ctx, &model.GetListPostsRequest{Status: "bogus"})
	require.Error(t, err)
	require.Equal(t, "Invalid status bogus", err.Error())

	_, err = d.GetList(ctx, &model.GetListPostsRequest{Limit: 51})
	require.Error(t, err)
	require.Equal(t, "Exceed the maximum of limit", err.Error())
}

func Test_postDomain_Review(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureContext(ctx)
	d := newTestPostDomain(t)

	// An ordinary user cannot review.
	userCtx := testutil.MockContextWithUserID(ctx, testutil.User3.ID)
	_, err := d.Review(userCtx, &model.ReviewPostRequest{
		PostID: testutil.Post1.ID,
		Action: "approve",
	})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// A moderator approval pays the owner.
	modCtx := testutil.MockContextWithUserID(ctx, testutil.Moderator.ID)
	_, err = d.Review(modCtx, &model.ReviewPostRequest{
		PostID: testutil.Post1.ID,
		Action: "approve",
	})
	require.NoError(t, err)

	post, err := repository.NewPostRepository().GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PostApproved, post.Status)
	require.Equal(t, int64(10), post.PointsEarned)

	owner, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(10), owner.Points)

	// Approved is terminal.
	_, err = d.Review(modCtx, &model.ReviewPostRequest{
		PostID: testutil.Post1.ID,
		Action: "approve",
	})
	require.Error(t, err)
	require.Equal(t, "Only pending posts can be reviewed", err.Error())

	// Rejection pays nothing and is terminal too.
	_, err = d.Review(modCtx, &model.ReviewPostRequest{
		PostID: testutil.Post2.ID,
		Action: "reject",
	})
	require.NoError(t, err)

	post, err = repository.NewPostRepository().GetByID(ctx, testutil.Post2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PostRejected, post.Status)

	ownerOfRejected, err := repository.NewUserRepository().GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), ownerOfRejected.Points)

	_, err = d.Review(modCtx, &model.ReviewPostRequest{
		PostID: testutil.Post2.ID,
		Action: "fast-track",
	})
	require.Error(t, err)
	require.Equal(t, "Action must be approve or reject", err.Error())
}
