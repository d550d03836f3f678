package redis

import (
	"context"
	"net"
	"time"

	"hoteladmin/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New returns a client for the primary node. An unreachable server is only
// logged: the cache and revocation checks degrade, and the rate limiter
// falls back to its in-process bucket.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary
	addr := net.JoinHostPort(primary.Host, primary.Port)

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     addr,
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	logger := log.With().Str("addr", addr).Int("db", primary.DB).Logger()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("redis is unreachable, continuing without it")

		return client
	}

	logger.Info().Msg("connected to redis")

	return client
}
