package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"

	"homebuy-agent/config"
	httpLayer "homebuy-agent/http"
	"homebuy-agent/repository"
	"homebuy-agent/service"
)

type serveCmd struct {
	addr      string
	redisAddr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the projection HTTP API" }
func (*serveCmd) Usage() string {
	return `homebuy serve [-addr <host:port>] [-redis <host:port>]

  Serves the projection engine over HTTP. Configuration comes from HOMEBUY_*
  environment variables; flags override them.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "listen address (overrides HOMEBUY_ADDR)")
	f.StringVar(&c.redisAddr, "redis", "", "Redis address for the evaluation cache (overrides HOMEBUY_REDIS_ADDR)")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.addr != "" {
		cfg.Addr = c.addr
	}
	if c.redisAddr != "" {
		cfg.RedisAddr = c.redisAddr
	}

	if err := run(ctx, cfg); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func newCache(ctx context.Context, cfg config.Config) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMockCache(), func() {}
	}

	cache := repository.NewRedisCache(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis at %s unreachable, using in-memory cache: %v", cfg.RedisAddr, err)
		cache.Close()
		return repository.NewMockCache(), func() {}
	}
	return cache, func() {
		if err := cache.Close(); err != nil {
			log.Printf("Warning: closing redis: %v", err)
		}
	}
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg config.Config) error {
	cache, closeCache := newCache(ctx, cfg)
	defer closeCache()

	evaluationRepo := repository.NewEvaluationRepositoryMemory()
	explainer := service.NewExplanationService(cfg.OpenAIKey, cfg.AIURL, cfg.AIModel)
	evaluationService := service.NewEvaluationService(evaluationRepo, cache, explainer, cfg.CacheTTL)
	horizonService := service.NewHorizonService()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	mux := httpLayer.NewRouter(
		rateLimiter,
		httpLayer.NewEvaluationHandler(evaluationService),
		httpLayer.NewHorizonHandler(horizonService),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Println("Server exited")
	return nil
}
