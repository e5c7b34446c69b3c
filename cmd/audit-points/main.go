// Command audit-points reports users whose point balance differs from the
// sum of points awarded in their history. It never modifies data and is
// intended to be invoked by an external cron job.
//
// Flags:
//
//	--limit  maximum number of divergent users to report (default 1000)
//	--uid    check a single user instead of scanning all users
//
// Exit codes: 0 = consistent, 1 = error, 2 = divergence found.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres/history"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres/user"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/app"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/config"
)

const exitDivergent = 2

func main() {
	limitFlag := flag.Int("limit", 1000, "maximum number of divergent users to report")
	uidFlag := flag.String("uid", "", "check a single user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := user.New(pool)

	if *uidFlag != "" {
		code := auditOne(ctx, logger, users, history.New(pool), *uidFlag)
		pool.Close()
		os.Exit(code)
	}

	divergent, err := users.Divergent(ctx, *limitFlag)
	if err != nil {
		logger.Error("points audit failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, d := range divergent {
		logger.Warn("points diverge from history",
			slog.String("uid", d.UID),
			slog.Int64("points", d.Points),
			slog.Int64("awarded_total", d.AwardedTotal),
			slog.Int64("difference", d.Points-d.AwardedTotal),
		)
	}

	logger.Info("points audit completed", slog.Int("divergent", len(divergent)))
	if len(divergent) > 0 {
		pool.Close()
		os.Exit(exitDivergent)
	}
}

func auditOne(ctx context.Context, logger *slog.Logger, users *user.Repo, histories *history.Repo, uid string) int {
	u, err := users.GetUser(ctx, uid)
	if err != nil {
		logger.Error("load user", slog.String("uid", uid), slog.String("error", err.Error()))
		return 1
	}

	awarded, err := histories.SumAwarded(ctx, uid)
	if err != nil {
		logger.Error("sum history awards", slog.String("uid", uid), slog.String("error", err.Error()))
		return 1
	}

	attrs := []any{
		slog.String("uid", uid),
		slog.Int64("points", u.Points),
		slog.Int64("awarded_total", awarded),
	}
	if u.Points != awarded {
		logger.Warn("points diverge from history", attrs...)
		return exitDivergent
	}
	logger.Info("points consistent with history", attrs...)
	return 0
}
