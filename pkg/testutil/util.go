package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/boostbuddies/backend/config"
	"github.com/boostbuddies/backend/internal/migration"
	"github.com/boostbuddies/backend/internal/model"
	"github.com/boostbuddies/backend/pkg/authenticator"
	"github.com/boostbuddies/backend/pkg/logger"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"github.com/boostbuddies/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// Every sqlite connection to :memory: opens its own database. A single
	// connection keeps all transactions on the one schema and serializes
	// concurrent ones.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Configs{
		ApiServer: config.ServerConfigs{
			MaxLimit:     50,
			DefaultLimit: 10,
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Secret:     "secret",
				Expiration: time.Minute,
			},
		},
		Post: config.PostConfigs{
			DefaultLikesNeeded: 10,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(ctx context.Context, userID string) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}

// MockRedisClient backs the xredis client with an in-process miniredis.
func MockRedisClient(t *testing.T) xredis.Client {
	mini := miniredis.NewMiniRedis()
	if err := mini.Start(); err != nil {
		panic(err)
	}
	t.Cleanup(mini.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	return xredis.NewClientWithRedis(rdb)
}

// MockDownRedisClient backs the xredis client with a miniredis that rejects
// every command, for exercising cache-failure paths.
func MockDownRedisClient(t *testing.T) xredis.Client {
	mini := miniredis.NewMiniRedis()
	if err := mini.Start(); err != nil {
		panic(err)
	}
	t.Cleanup(mini.Close)
	mini.SetError("connection refused")

	rdb := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	return xredis.NewClientWithRedis(rdb)
}
