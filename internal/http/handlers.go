package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/subnetcheck/subnetcheck/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.Health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "db ping failed", "err", err.Error())
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Match an address against subnets
// @Description Reports whether the address lies within the given CIDR subnets. Mode "any" (default) succeeds on the first containing subnet, "all" requires every subnet to contain the address.
// @Tags match
// @Accept json
// @Produce json
// @Param payload body MatchRequest true "Match query"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/match [post]
func (a *API) handleMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[MatchRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling match request", "err", err.Error())
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	var matched bool
	switch req.Mode {
	case "", "any":
		matched, err = a.Service.MatchAnySubnet(ctx, req.Address, req.Subnets)
	case "all":
		matched, err = a.Service.MatchAllSubnets(ctx, req.Address, req.Subnets)
	default:
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "unknown mode, want any or all"})
		return
	}
	if err != nil {
		a.respondError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, MatchResponse{Matched: matched})
}

// @Summary Match addresses against subnets
// @Description Reports whether at least one of the addresses lies within at least one of the CIDR subnets.
// @Tags match
// @Accept json
// @Produce json
// @Param payload body MatchAddressesRequest true "Match query"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/match/addresses [post]
func (a *API) handleMatchAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[MatchAddressesRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling match addresses request", "err", err.Error())
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	matched, err := a.Service.MatchAddresses(ctx, req.Addresses, req.Subnets)
	if err != nil {
		a.respondError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, MatchResponse{Matched: matched})
}

// @Summary List subnet sets
// @Tags sets
// @Produce json
// @Success 200 {array} SubnetSetResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sets [get]
func (a *API) handleListSets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sets, err := a.Service.ListSets(ctx)
	if err != nil {
		a.respondError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, setsToResponse(sets))
}

// @Summary Create subnet set
// @Tags sets
// @Accept json
// @Produce json
// @Param payload body CreateSetRequest true "Subnet set payload"
// @Success 201 {object} SubnetSetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sets [post]
func (a *API) handleCreateSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[CreateSetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling set from request", "err", err.Error())
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	set, err := a.Service.CreateSet(ctx, domain.CreateSetInput{
		Name:        req.Name,
		Description: req.Description,
		CIDRs:       req.CIDRs,
	})
	if err != nil {
		a.respondError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusCreated, setToResponse(set))
}

// @Summary Get subnet set
// @Tags sets
// @Produce json
// @Param name path string true "Set name"
// @Success 200 {object} SubnetSetResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sets/{name} [get]
func (a *API) handleGetSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	set, err := a.Service.GetSet(ctx, r.PathValue("name"))
	if err != nil {
		a.respondError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, setToResponse(set))
}

// @Summary Delete subnet set
// @Tags sets
// @Param name path string true "Set name"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sets/{name} [delete]
func (a *API) handleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.Service.DeleteSet(ctx, r.PathValue("name")); err != nil {
		a.respondError(ctx, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Match an address against a stored set
// @Tags sets
// @Produce json
// @Param name path string true "Set name"
// @Param address query string true "IP address to test"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sets/{name}/match [get]
func (a *API) handleMatchSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address := r.URL.Query().Get("address")
	if address == "" {
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: "missing address query parameter"})
		return
	}

	matched, err := a.Service.MatchSet(ctx, r.PathValue("name"), address)
	if err != nil {
		a.respondError(ctx, w, r, err)
		return
	}

	a.respond(ctx, w, r, http.StatusOK, MatchResponse{Matched: matched})
}

func (a *API) respond(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) respondError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		a.respond(ctx, w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		a.respond(ctx, w, r, http.StatusNotFound, ErrorResponse{Error: "set not found"})
	case errors.Is(err, domain.ErrConflict):
		a.respond(ctx, w, r, http.StatusConflict, ErrorResponse{Error: "set already exists"})
	default:
		a.Logger.ErrorContext(ctx, "uncaught error", "request_id", requestIDFromContext(ctx), "err", err.Error())
		a.respond(ctx, w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
