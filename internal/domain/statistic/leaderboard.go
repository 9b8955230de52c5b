package statistic

import (
	"context"

	"github.com/boostbuddies/backend/internal/repository"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"github.com/boostbuddies/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

const keyPointsLeaderboard = "leaderboard:points"

type Entry struct {
	UserID string
	Points int64
}

// Leaderboard is a redis zset projection of user balances. The database stays
// authoritative: the zset is rebuilt from it on a miss and nudged with
// incremental updates on every grant.
type Leaderboard interface {
	Top(ctx context.Context, offset, limit int) ([]Entry, error)
	IncreasePoint(ctx context.Context, userID string, delta int64) error
	Invalidate(ctx context.Context) error
}

type leaderboard struct {
	userRepo    repository.UserRepository
	redisClient xredis.Client
}

func New(userRepo repository.UserRepository, redisClient xredis.Client) *leaderboard {
	return &leaderboard{userRepo: userRepo, redisClient: redisClient}
}

func (l *leaderboard) Top(ctx context.Context, offset, limit int) ([]Entry, error) {
	ok, err := l.redisClient.Exist(ctx, keyPointsLeaderboard)
	if err != nil {
		return nil, err
	}

	if !ok {
		if err := l.loadFromDB(ctx); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, keyPointsLeaderboard, offset, limit)
	if err != nil {
		return nil, err
	}

	entries := []Entry{}
	for _, z := range results {
		entries = append(entries, Entry{
			UserID: z.Member.(string),
			Points: int64(z.Score),
		})
	}

	return entries, nil
}

// IncreasePoint keeps a warm zset in sync after a committed grant. A cold
// zset is left cold; the next read rebuilds it.
func (l *leaderboard) IncreasePoint(ctx context.Context, userID string, delta int64) error {
	ok, err := l.redisClient.Exist(ctx, keyPointsLeaderboard)
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	return l.redisClient.ZIncrBy(ctx, keyPointsLeaderboard, delta, userID)
}

func (l *leaderboard) Invalidate(ctx context.Context) error {
	return l.redisClient.Del(ctx, keyPointsLeaderboard)
}

func (l *leaderboard) loadFromDB(ctx context.Context) error {
	users, err := l.userRepo.AllBalances(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load balances from database: %v", err)
		return err
	}

	for _, u := range users {
		err := l.redisClient.ZAdd(ctx, keyPointsLeaderboard, redis.Z{
			Member: u.ID,
			Score:  float64(u.Points),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
