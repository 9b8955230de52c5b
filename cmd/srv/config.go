package main

import (
	"os"
	"strconv"
	"time"

	"github.com/boostbuddies/backend/config"
)

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "boostbuddies"),
			Password: getEnv("MYSQL_PASSWORD", "boostbuddies"),
			Database: getEnv("MYSQL_DATABASE", "boostbuddies"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			MaxLimit:     getEnvAsInt("API_MAX_LIMIT", 50),
			DefaultLimit: getEnvAsInt("API_DEFAULT_LIMIT", 10),
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Secret:     getEnv("TOKEN_SECRET", "token_secret"),
				Expiration: getEnvAsDuration("TOKEN_EXPIRATION", "24h"),
			},
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Post: config.PostConfigs{
			DefaultLikesNeeded: getEnvAsInt("POST_DEFAULT_LIKES_NEEDED", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		panic(err)
	}

	return value
}

func getEnvAsDuration(key, fallback string) time.Duration {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		panic(err)
	}

	return value
}
