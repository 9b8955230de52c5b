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

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	points := map[string]int64{"first": 50, "second_a": 30, "second_b": 30, "fourth": 10}
	for id, balance := range points {
		err := userRepo.Create(ctx, &entity.User{
			Base:   entity.Base{ID: id},
			Email:  id + "@example.com",
			Points: balance,
			Role:   entity.UserRole,
		})
		require.NoError(t, err)
	}

	d := NewStatisticDomain(userRepo,
		statistic.New(userRepo, testutil.MockRedisClient(t)))

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 4)

	// Tied balances share a rank; the next distinct balance resumes at its
	// absolute position.
	require.Equal(t, 1, resp.Leaderboard[0].Rank)
	require.Equal(t, int64(50), resp.Leaderboard[0].User.Points)
	require.Equal(t, 2, resp.Leaderboard[1].Rank)
	require.Equal(t, int64(30), resp.Leaderboard[1].User.Points)
	require.Equal(t, 2, resp.Leaderboard[2].Rank)
	require.Equal(t, int64(30), resp.Leaderboard[2].User.Points)
	require.Equal(t, 4, resp.Leaderboard[3].Rank)
	require.Equal(t, int64(10), resp.Leaderboard[3].User.Points)
}

func Test_statisticDomain_GetLeaderboard_Paging(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	points := map[string]int64{"first": 50, "second_a": 30, "second_b": 30, "fourth": 10}
	for id, balance := range points {
		err := userRepo.Create(ctx, &entity.User{
			Base:   entity.Base{ID: id},
			Email:  id + "@example.com",
			Points: balance,
			Role:   entity.UserRole,
		})
		require.NoError(t, err)
	}

	d := NewStatisticDomain(userRepo,
		statistic.New(userRepo, testutil.MockRedisClient(t)))

	// A page starting inside a tie still reports the shared rank.
	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Offset: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 2)
	require.Equal(t, 2, resp.Leaderboard[0].Rank)
	require.Equal(t, int64(30), resp.Leaderboard[0].User.Points)
	require.Equal(t, 4, resp.Leaderboard[1].Rank)
	require.Equal(t, int64(10), resp.Leaderboard[1].User.Points)

	_, err = d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Limit: 100})
	require.Error(t, err)
	require.Equal(t, "Exceed the maximum of limit", err.Error())
}

func Test_statisticDomain_GetLeaderboard_DatabaseFallback(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	points := map[string]int64{"first": 50, "second_a": 30, "second_b": 30, "fourth": 10}
	for id, balance := range points {
		err := userRepo.Create(ctx, &entity.User{
			Base:   entity.Base{ID: id},
			Email:  id + "@example.com",
			Points: balance,
			Role:   entity.UserRole,
		})
		require.NoError(t, err)
	}

	// An unreachable cache degrades the read to the database listing; the
	// ranks must come out the same.
	d := NewStatisticDomain(userRepo,
		statistic.New(userRepo, testutil.MockDownRedisClient(t)))

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 4)

	require.Equal(t, 1, resp.Leaderboard[0].Rank)
	require.Equal(t, int64(50), resp.Leaderboard[0].User.Points)
	require.Equal(t, 2, resp.Leaderboard[1].Rank)
	require.Equal(t, int64(30), resp.Leaderboard[1].User.Points)
	require.Equal(t, 2, resp.Leaderboard[2].Rank)
	require.Equal(t, int64(30), resp.Leaderboard[2].User.Points)
	require.Equal(t, 4, resp.Leaderboard[3].Rank)
	require.Equal(t, int64(10), resp.Leaderboard[3].User.Points)

	resp, err = d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Offset: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 2)
	require.Equal(t, 2, resp.Leaderboard[0].Rank)
	require.Equal(t, 4, resp.Leaderboard[1].Rank)
}

func Test_statisticDomain_RefreshLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	points := map[string]int64{"low": 1, "high": 5}
	for id, balance := range points {
		err := userRepo.Create(ctx, &entity.User{
			Base:   entity.Base{ID: id},
			Email:  id + "@example.com",
			Points: balance,
			Role:   entity.UserRole,
		})
		require.NoError(t, err)
	}

	err := userRepo.Create(ctx, &entity.User{
		Base:  entity.Base{ID: "mod"},
		Email: "mod@example.com",
		Role:  entity.ModeratorRole,
	})
	require.NoError(t, err)

	d := NewStatisticDomain(userRepo,
		statistic.New(userRepo, testutil.MockRedisClient(t)))

	// Warm the cache, then correct a balance behind its back. The cached
	// ordering goes stale because only grants nudge the zset.
	_, err = d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)

	require.NoError(t, userRepo.IncreasePoints(ctx, "low", 100))

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Equal(t, "high", resp.Leaderboard[0].User.ID)

	_, err = d.RefreshLeaderboard(
		testutil.MockContextWithUserID(ctx, "high"), &model.RefreshLeaderboardRequest{})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	_, err = d.RefreshLeaderboard(
		testutil.MockContextWithUserID(ctx, "mod"), &model.RefreshLeaderboardRequest{})
	require.NoError(t, err)

	// The next read rebuilds from the database and sees the correction.
	resp, err = d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Equal(t, "low", resp.Leaderboard[0].User.ID)
	require.Equal(t, int64(101), resp.Leaderboard[0].User.Points)
	require.Equal(t, 1, resp.Leaderboard[0].Rank)
}

func Test_statisticDomain_GetLeaderboard_TracksGrants(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureContext(ctx)

	userRepo := repository.NewUserRepository()
	leaderboard := statistic.New(userRepo, testutil.MockRedisClient(t))
	engagement := NewEngagementDomain(
		repository.NewPostRepository(),
		userRepo,
		repository.NewInteractionRepository(),
		repository.NewPointsHistoryRepository(),
		leaderboard,
	)
	d := NewStatisticDomain(userRepo, leaderboard)

	// Warm the cache, then engage; the committed grant must show up without
	// an invalidation.
	_, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err = engagement.ProcessEngagement(authorizedCtx, &model.ProcessEngagementRequest{
		PostID: testutil.Post1.ID,
		Action: "share",
	})
	require.NoError(t, err)

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.ID, resp.Leaderboard[0].User.ID)
	require.Equal(t, int64(3), resp.Leaderboard[0].User.Points)
	require.Equal(t, 1, resp.Leaderboard[0].Rank)
}
