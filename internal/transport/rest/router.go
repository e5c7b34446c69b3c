package rest

import (
	"net/http"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Trainer     *TrainerHandler
	Profile     *ProfileHandler
	Leaderboard *LeaderboardHandler
	Metrics     http.Handler
}

// RouteMiddleware holds the per-route middleware. Auth guards every /api
// route and Generate rate-limits the routes that call a model. Instrument
// builds the metrics middleware for a route. Nil entries are skipped.
type RouteMiddleware struct {
	Auth       middleware.Middleware
	Generate   middleware.Middleware
	Instrument func(route string) middleware.Middleware
}

// NewRouter registers all routes on a fresh ServeMux.
func NewRouter(h Handlers, mw RouteMiddleware) *http.ServeMux {
	mux := http.NewServeMux()

	handle := func(pattern string, fn http.HandlerFunc, extra ...middleware.Middleware) {
		mws := make([]middleware.Middleware, 0, len(extra)+1)
		if mw.Instrument != nil {
			mws = append(mws, mw.Instrument(pattern))
		}
		for _, m := range extra {
			if m != nil {
				mws = append(mws, m)
			}
		}
		mux.Handle(pattern, middleware.Chain(mws...)(fn))
	}

	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	handle("POST /api/sampleSentence", h.Trainer.SampleSentence, mw.Auth, mw.Generate)
	handle("POST /api/turn", h.Trainer.Turn, mw.Auth, mw.Generate)
	handle("POST /api/rewrite", h.Trainer.Rewrite, mw.Auth, mw.Generate)
	handle("POST /api/analyze", h.Trainer.Analyze, mw.Auth, mw.Generate)

	handle("GET /api/me/summary", h.Profile.Summary, mw.Auth)
	handle("POST /api/me/update", h.Profile.UpdateName, mw.Auth)
	handle("GET /api/history", h.Profile.History, mw.Auth)
	handle("GET /api/leaderboard", h.Leaderboard.Top, mw.Auth)

	return mux
}
