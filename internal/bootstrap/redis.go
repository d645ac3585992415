package bootstrap

import (
	"github.com/redis/go-redis/v9"

	"github.com/teamtrack-hr/teamtrack-backend/config"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
