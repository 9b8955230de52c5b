package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/boostbuddies/backend/internal/middleware"
	"github.com/boostbuddies/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis(s.seedContext())
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Public API
	router.POST(s.router, "/register", s.userDomain.Register)
	router.GET(s.router, "/getLeaderboard", s.statisticDomain.GetLeaderboard)
	router.GET(s.router, "/getPost", s.postDomain.Get)
	router.GET(s.router, "/getListPosts", s.postDomain.GetList)

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate())
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.GET(authRouter, "/getUserStats", s.userDomain.GetStats)
		router.GET(authRouter, "/getPointsHistory", s.userDomain.GetPointsHistory)
		router.POST(authRouter, "/claimDailyBonus", s.engagementDomain.ClaimDailyBonus)

		// Post API
		router.POST(authRouter, "/createPost", s.postDomain.Create)
		router.POST(authRouter, "/reviewPost", s.postDomain.Review)

		// Engagement API
		router.POST(authRouter, "/engagePost", s.engagementDomain.ProcessEngagement)

		// Statistic API
		router.POST(authRouter, "/refreshLeaderboard", s.statisticDomain.RefreshLeaderboard)
	}
}
