package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres/history"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres/migrations"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres/user"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/provider/anthropic"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/provider/firebase"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/provider/gemini"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/provider/inference"
	redisadapter "github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/redis"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/config"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/observability"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/scoring"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/bias"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/generator"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/leaderboard"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/profile"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/submission"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/trainer"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/transport/middleware"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/transport/rest"
)

// leaderboardCache is the optional Redis page cache as seen by the
// leaderboard service and the health handler.
type leaderboardCache interface {
	Get(ctx context.Context, limit int) ([]domain.LeaderboardEntry, bool, error)
	Set(ctx context.Context, limit int, entries []domain.LeaderboardEntry) error
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// the stores, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("pass_policy", cfg.Scoring.Policy),
		slog.Float64("threshold", cfg.Scoring.Threshold),
		slog.String("providers", strings.Join(cfg.LLM.ProvidersConfigured(), ",")),
	)

	// 1. Database.
	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// 2. Metrics.
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry, pool)

	// 3. Repositories.
	txm := postgres.NewTxManager(pool)
	users := user.New(pool)
	histories := history.New(pool)

	// 4. Bias model and pass policy.
	scorer, err := bias.NewScorer(logger, inference.NewClient(cfg.Scoring, logger), cfg.Scoring.CacheSize, metrics)
	if err != nil {
		return fmt.Errorf("bias scorer: %w", err)
	}
	policy, ok := scoring.ByName(cfg.Scoring.Policy, cfg.Scoring.Reward)
	if !ok {
		return fmt.Errorf("unknown pass policy %q", cfg.Scoring.Policy)
	}

	// 5. Text providers.
	providers, closeProviders, err := newTextProviders(ctx, cfg.LLM, logger)
	if err != nil {
		return err
	}
	defer closeProviders()

	generatorSvc, err := generator.NewService(logger, metrics, providers...)
	if err != nil {
		return err
	}

	// 6. Optional leaderboard cache. A Redis outage at startup only
	// disables caching.
	var cache leaderboardCache
	rdb, err := redisadapter.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("leaderboard cache disabled", slog.String("error", err.Error()))
	}
	if rdb != nil {
		defer rdb.Close()
		cache = redisadapter.NewLeaderboardCache(rdb, cfg.Redis.LeaderboardTTL)
	}

	// 7. Services.
	submissionSvc := submission.NewService(logger, scorer, users, histories, txm, policy, cfg.Scoring.Threshold, cfg.Database.PersistTimeout, metrics)
	trainerSvc := trainer.NewService(logger, generatorSvc, submissionSvc, scorer)
	profileSvc := profile.NewService(logger, users, histories)
	leaderboardSvc := leaderboard.NewService(logger, users, cache, metrics)

	// 8. HTTP.
	verifier := firebase.NewVerifier(cfg.Auth, logger)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, cache, BuildVersion()),
		Trainer:     rest.NewTrainerHandler(trainerSvc, logger),
		Profile:     rest.NewProfileHandler(profileSvc, logger),
		Leaderboard: rest.NewLeaderboardHandler(leaderboardSvc, logger),
		Metrics:     metrics.Handler(),
	}, rest.RouteMiddleware{
		Auth:     middleware.Auth(verifier),
		Generate: limiter.Limit(cfg.RateLimit.GeneratePerMinute),
		Instrument: func(route string) middleware.Middleware {
			return middleware.Metrics(metrics, route)
		},
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newTextProviders builds a client per configured API key. Claude comes
// first so it serves modes whose preferred provider is absent.
func newTextProviders(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) ([]generator.TextProvider, func(), error) {
	var (
		providers []generator.TextProvider
		closers   []func() error
	)
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("close text provider", slog.String("error", err.Error()))
			}
		}
	}

	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, anthropic.NewClient(cfg, logger))
	}
	if cfg.GeminiAPIKey != "" {
		g, err := gemini.NewClient(ctx, cfg, logger)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("gemini client: %w", err)
		}
		providers = append(providers, g)
		closers = append(closers, g.Close)
	}

	return providers, closeAll, nil
}

// serve runs srv until ctx is cancelled or the listener fails, then drains
// in-flight requests for at most timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
