package http

import (
	"context"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/subnetcheck/subnetcheck/internal/auth"
	"github.com/subnetcheck/subnetcheck/internal/domain"
)

// HealthChecker is the readiness dependency, satisfied by *pgxpool.Pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	Health        HealthChecker
	Service       domain.MatcherService
	Authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.MatcherService, authenticator auth.Authenticator) *API {
	return &API{
		Logger:        logger,
		Health:        health,
		Service:       service,
		Authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)

	mux.HandleFunc("POST /api/v1/match", a.handleMatch)
	mux.HandleFunc("POST /api/v1/match/addresses", a.handleMatchAddresses)

	mux.HandleFunc("GET /api/v1/sets", a.handleListSets)
	mux.HandleFunc("POST /api/v1/sets", a.handleCreateSet)
	mux.HandleFunc("GET /api/v1/sets/{name}", a.handleGetSet)
	mux.HandleFunc("DELETE /api/v1/sets/{name}", a.handleDeleteSet)
	mux.HandleFunc("GET /api/v1/sets/{name}/match", a.handleMatchSet)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return requestIDMiddleware(a.authMiddleware(mux))
}
