package main

import (
	"context"
	"net/http"

	"github.com/boostbuddies/backend/config"
	"github.com/boostbuddies/backend/internal/domain"
	"github.com/boostbuddies/backend/internal/domain/statistic"
	"github.com/boostbuddies/backend/internal/repository"
	"github.com/boostbuddies/backend/pkg/logger"
	"github.com/boostbuddies/backend/pkg/router"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"github.com/boostbuddies/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client

	userRepo          repository.UserRepository
	postRepo          repository.PostRepository
	interactionRepo   repository.InteractionRepository
	pointsHistoryRepo repository.PointsHistoryRepository

	leaderboard statistic.Leaderboard

	userDomain       domain.UserDomain
	postDomain       domain.PostDomain
	engagementDomain domain.EngagementDomain
	statisticDomain  domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis(ctx context.Context) {
	var err error
	s.redisClient, err = xredis.NewClient(ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.postRepo = repository.NewPostRepository()
	s.interactionRepo = repository.NewInteractionRepository()
	s.pointsHistoryRepo = repository.NewPointsHistoryRepository()
}

func (s *srv) loadDomains() {
	s.leaderboard = statistic.New(s.userRepo, s.redisClient)
	s.userDomain = domain.NewUserDomain(
		s.userRepo, s.postRepo, s.interactionRepo, s.pointsHistoryRepo)
	s.postDomain = domain.NewPostDomain(
		s.postRepo, s.userRepo, s.pointsHistoryRepo, s.leaderboard)
	s.engagementDomain = domain.NewEngagementDomain(
		s.postRepo, s.userRepo, s.interactionRepo, s.pointsHistoryRepo, s.leaderboard)
	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.leaderboard)
}

// seedContext carries the loaded dependencies into phases that run outside of
// a request, like migrations and the redis dial.
func (s *srv) seedContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	if s.db != nil {
		ctx = xcontext.WithDB(ctx, s.db)
	}

	return ctx
}
