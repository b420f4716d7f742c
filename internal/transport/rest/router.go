package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/haiku-judge/internal/auth"
	"github.com/heartmarshall/haiku-judge/internal/metrics"
	"github.com/heartmarshall/haiku-judge/internal/transport/middleware"
)

// Router holds everything the HTTP surface is assembled from.
type Router struct {
	Health      *HealthHandler
	Scores      *ScoreHandler
	Games       *GameHandler
	Tokens      *auth.JWTManager
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// Handler builds the mux. Admin routes need a bearer token with the admin
// role; public writes are rate limited per client IP.
func (rt Router) Handler() http.Handler {
	mux := http.NewServeMux()

	admin := func(h http.HandlerFunc) http.Handler { return middleware.RequireAdmin(h) }
	limited := func(h http.HandlerFunc) http.Handler {
		if rt.RateLimiter == nil {
			return h
		}
		return rt.RateLimiter.Middleware(h)
	}

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics.Handler())
	}

	mux.Handle("POST /api/v1/score", limited(rt.Scores.Score))

	mux.Handle("POST /api/v1/games", admin(rt.Games.CreateGame))
	mux.Handle("POST /api/v1/games/{gameID}/submissions", limited(rt.Games.CreateSubmission))
	mux.HandleFunc("GET /api/v1/games/{gameID}/submissions/{submissionID}", rt.Games.GetSubmission)
	mux.HandleFunc("GET /api/v1/games/{gameID}/standings", rt.Games.Standings)
	mux.Handle("POST /api/v1/games/{gameID}/judge", admin(rt.Games.JudgeGame))
	mux.Handle("POST /api/v1/games/{gameID}/submissions/{submissionID}/judge", admin(rt.Games.JudgeSubmission))

	var rec interface{ RequestServed(string, int) }
	if rt.Metrics != nil {
		rec = rt.Metrics
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(rt.Logger, rec),
		middleware.Recovery(rt.Logger),
		middleware.Auth(rt.Tokens),
	)(mux)
}
