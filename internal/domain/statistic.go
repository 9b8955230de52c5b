package domain

import (
	"context"

	"github.com/boostbuddies/backend/internal/common"
	"github.com/boostbuddies/backend/internal/domain/statistic"
	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/internal/model"
	"github.com/boostbuddies/backend/internal/repository"
	"github.com/boostbuddies/backend/pkg/errorx"
	"github.com/boostbuddies/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	RefreshLeaderboard(context.Context, *model.RefreshLeaderboardRequest) (*model.RefreshLeaderboardResponse, error)
}

type statisticDomain struct {
	userRepo     repository.UserRepository
	leaderboard  statistic.Leaderboard
	roleVerifier *common.GlobalRoleVerifier
}

func NewStatisticDomain(
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
) *statisticDomain {
	return &statisticDomain{
		userRepo:     userRepo,
		leaderboard:  leaderboard,
		roleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	entries, err := d.leaderboard.Top(ctx, req.Offset, req.Limit)
	if err != nil {
		// The database stays authoritative; an unreachable cache degrades
		// the read instead of failing it.
		xcontext.Logger(ctx).Warnf("Cannot read cached leaderboard, using database: %v", err)

		users, err := d.userRepo.GetLeaderboard(ctx, req.Offset, req.Limit)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get leaderboard: %v", err)
			return nil, errorx.Unknown
		}

		entries = entries[:0]
		for i := range users {
			entries = append(entries, statistic.Entry{
				UserID: users[i].ID,
				Points: users[i].Points,
			})
		}
	}

	if len(entries) == 0 {
		return &model.GetLeaderboardResponse{Leaderboard: []model.LeaderboardEntry{}}, nil
	}

	ids := []string{}
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}

	users, err := d.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard users: %v", err)
		return nil, errorx.Unknown
	}

	byID := map[string]*entity.User{}
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	// Ranks follow the strictly-more-points rule, so tied balances share a
	// rank. Entries come back in descending score order; the first one is
	// anchored against the database because its ties may sit on earlier
	// pages, and the rest follow from tie comparison with the previous
	// entry.
	higher, err := d.userRepo.CountWithMorePoints(ctx, entries[0].Points)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute leaderboard rank: %v", err)
		return nil, errorx.Unknown
	}

	leaderboard := []model.LeaderboardEntry{}
	rank := int(higher) + 1
	for i, e := range entries {
		user, ok := byID[e.UserID]
		if !ok {
			xcontext.Logger(ctx).Warnf("Leaderboard member %s has no user row", e.UserID)
			continue
		}

		if i > 0 && e.Points != entries[i-1].Points {
			rank = req.Offset + i + 1
		}

		leaderboard = append(leaderboard, model.LeaderboardEntry{
			User: model.ConvertUser(user),
			Rank: rank,
		})
	}

	return &model.GetLeaderboardResponse{Leaderboard: leaderboard}, nil
}

// RefreshLeaderboard drops the cached zset so the next read rebuilds it from
// the database. It is the recovery path for a cache that drifted, e.g. after
// a manual balance correction.
func (d *statisticDomain) RefreshLeaderboard(
	ctx context.Context, req *model.RefreshLeaderboardRequest,
) (*model.RefreshLeaderboardResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.ReviewGroup...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.leaderboard.Invalidate(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot invalidate cached leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RefreshLeaderboardResponse{}, nil
}
