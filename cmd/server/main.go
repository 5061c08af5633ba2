package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpapi "github.com/marketplace/dealchat/internal/api/http"
	appChat "github.com/marketplace/dealchat/internal/application/chat"
	appDeal "github.com/marketplace/dealchat/internal/application/deal"
	"github.com/marketplace/dealchat/internal/config"
	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/infrastructure/lock"
	"github.com/marketplace/dealchat/internal/infrastructure/memory"
	"github.com/marketplace/dealchat/internal/infrastructure/postgres"
	"github.com/marketplace/dealchat/internal/infrastructure/redisstore"
	"github.com/marketplace/dealchat/internal/infrastructure/sse"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config error")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db error")
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
			logger.Fatal().Err(err).Msg("migration error")
		}
	}

	// repositories
	chatRepo := postgres.NewChatRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)

	// infrastructure
	sseHub := sse.NewHub()
	defer sseHub.Stop()
	broadcaster := sse.Fanout{sseHub}
	checks := map[string]httpapi.HealthCheck{"postgres": pool.Ping}

	var (
		votes  deal.VoteStore
		locker deal.Locker = lock.NewLocal()
	)
	stopSweep := func() {}
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis error")
		}
		defer rdb.Close()
		votes = redisstore.NewVoteStore(rdb, cfg.VoteTTL)
		if cfg.LockBackend == config.LockRedis {
			locker = redisstore.NewLocker(rdb, cfg.LockTTL)
		}
		if cfg.EventStream != "" {
			broadcaster = append(broadcaster, redisstore.NewStreamPublisher(rdb, cfg.EventStream))
		}
		checks["redis"] = pingRedis(rdb)
	} else {
		logger.Warn().Msg("REDIS_URL is empty, votes are kept in process")
		memVotes := memory.NewVoteStore(cfg.VoteTTL)
		votes = memVotes
		stopSweep = sweepLoop(memVotes, logger)
	}
	defer stopSweep()

	// services
	dealSvc := appDeal.NewService(chatRepo, dealRepo, votes, locker, broadcaster, logger)
	chatSvc := appChat.NewService(chatRepo, dealRepo, votes, logger)

	// API server
	apiServer := httpapi.NewServer(dealSvc, chatSvc, sseHub, []byte(cfg.JWTSecret), cfg.CORSOrigin, checks, logger)

	httpServer := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           apiServer.Router(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// start server
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Str("lock", cfg.LockBackend).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sseHub.Stop()
	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}
	logger.Info().Msg("http server stopped")
}

func pingRedis(rdb *redis.Client) httpapi.HealthCheck {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}

// sweepLoop evicts expired in-process vote sets until the returned stop is called.
func sweepLoop(votes *memory.VoteStore, logger zerolog.Logger) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := votes.Sweep(); n > 0 {
					logger.Debug().Int("evicted", n).Msg("expired vote sets swept")
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
