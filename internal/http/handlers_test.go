package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/subnetcheck/subnetcheck/internal/domain"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(context.Context) error {
	return s.err
}

type stubService struct {
	matchSubnetFn     func(context.Context, string, string) (bool, error)
	matchAnySubnetFn  func(context.Context, string, []string) (bool, error)
	matchAllSubnetsFn func(context.Context, string, []string) (bool, error)
	matchAddressesFn  func(context.Context, []string, []string) (bool, error)
	listSetsFn        func(context.Context) ([]domain.SubnetSet, error)
	createSetFn       func(context.Context, domain.CreateSetInput) (domain.SubnetSet, error)
	getSetFn          func(context.Context, string) (domain.SubnetSet, error)
	deleteSetFn       func(context.Context, string) error
	matchSetFn        func(context.Context, string, string) (bool, error)
}

func (s stubService) MatchSubnet(ctx context.Context, address, subnet string) (bool, error) {
	if s.matchSubnetFn == nil {
		return false, nil
	}
	return s.matchSubnetFn(ctx, address, subnet)
}

func (s stubService) MatchAnySubnet(ctx context.Context, address string, subnets []string) (bool, error) {
	if s.matchAnySubnetFn == nil {
		return false, nil
	}
	return s.matchAnySubnetFn(ctx, address, subnets)
}

func (s stubService) MatchAllSubnets(ctx context.Context, address string, subnets []string) (bool, error) {
	if s.matchAllSubnetsFn == nil {
		return false, nil
	}
	return s.matchAllSubnetsFn(ctx, address, subnets)
}

func (s stubService) MatchAddresses(ctx context.Context, addresses, subnets []string) (bool, error) {
	if s.matchAddressesFn == nil {
		return false, nil
	}
	return s.matchAddressesFn(ctx, addresses, subnets)
}

func (s stubService) ListSets(ctx context.Context) ([]domain.SubnetSet, error) {
	if s.listSetsFn == nil {
		return nil, nil
	}
	return s.listSetsFn(ctx)
}

func (s stubService) CreateSet(ctx context.Context, input domain.CreateSetInput) (domain.SubnetSet, error) {
	if s.createSetFn == nil {
		return domain.SubnetSet{}, nil
	}
	return s.createSetFn(ctx, input)
}

func (s stubService) GetSet(ctx context.Context, name string) (domain.SubnetSet, error) {
	if s.getSetFn == nil {
		return domain.SubnetSet{}, nil
	}
	return s.getSetFn(ctx, name)
}

func (s stubService) DeleteSet(ctx context.Context, name string) error {
	if s.deleteSetFn == nil {
		return nil
	}
	return s.deleteSetFn(ctx, name)
}

func (s stubService) MatchSet(ctx context.Context, name, address string) (bool, error) {
	if s.matchSetFn == nil {
		return false, nil
	}
	return s.matchSetFn(ctx, name, address)
}

func newHandlerTestAPI(service domain.MatcherService, healthErr error) *API {
	return NewAPI(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubHealthChecker{err: healthErr},
		service,
		nil,
	)
}

func decodeMatchResponse(t *testing.T, rec *httptest.ResponseRecorder) MatchResponse {
	t.Helper()

	var resp MatchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestReadyzReturnsServiceUnavailableWhenHealthCheckFails(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, context.Canceled)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestMatchDefaultsToAnyMode(t *testing.T) {
	var gotSubnets []string
	api := newHandlerTestAPI(stubService{
		matchAnySubnetFn: func(_ context.Context, address string, subnets []string) (bool, error) {
			gotSubnets = subnets
			return address == "192.168.182.1", nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match",
		strings.NewReader(`{"address":"192.168.182.1","subnets":["192.168.181.0/24","192.168.182.0/24"]}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if !decodeMatchResponse(t, rec).Matched {
		t.Fatal("expected matched true")
	}
	if len(gotSubnets) != 2 {
		t.Fatalf("expected both subnets forwarded, got %v", gotSubnets)
	}
}

func TestMatchAllMode(t *testing.T) {
	called := false
	api := newHandlerTestAPI(stubService{
		matchAllSubnetsFn: func(context.Context, string, []string) (bool, error) {
			called = true
			return true, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match",
		strings.NewReader(`{"address":"192.168.182.1","subnets":["192.168.182.0/24"],"mode":"all"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if !called {
		t.Fatal("expected the all-mode service call")
	}
}

func TestMatchRejectsUnknownMode(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match",
		strings.NewReader(`{"address":"192.168.182.1","subnets":["192.168.182.0/24"],"mode":"none"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestMatchReturnsBadRequestOnInvalidInput(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		matchAnySubnetFn: func(context.Context, string, []string) (bool, error) {
			return false, domain.ErrInvalidInput
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match",
		strings.NewReader(`{"address":"bad","subnets":["192.168.182.0/24"]}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestMatchAddresses(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		matchAddressesFn: func(_ context.Context, addresses, subnets []string) (bool, error) {
			return len(addresses) == 2 && len(subnets) == 2, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/addresses",
		strings.NewReader(`{"addresses":["192.168.182.1","192.168.182.2"],"subnets":["192.168.181.0/24","192.168.182.2/32"]}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if !decodeMatchResponse(t, rec).Matched {
		t.Fatal("expected matched true")
	}
}

func TestGetSetReturnsNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		getSetFn: func(context.Context, string) (domain.SubnetSet, error) {
			return domain.SubnetSet{}, domain.ErrNotFound
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sets/missing", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "set not found") {
		t.Fatalf("expected set not found body, got %q", rec.Body.String())
	}
}

func TestCreateSetReturnsConflictOnDuplicateName(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createSetFn: func(context.Context, domain.CreateSetInput) (domain.SubnetSet, error) {
			return domain.SubnetSet{}, domain.ErrConflict
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sets",
		strings.NewReader(`{"name":"office","cidrs":["10.0.0.0/8"]}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestDeleteSetReturnsNoContent(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/sets/office", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestMatchSetRequiresAddressParameter(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sets/office/match", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestMatchSetForwardsNameAndAddress(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		matchSetFn: func(_ context.Context, name, address string) (bool, error) {
			return name == "office" && address == "10.1.2.3", nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sets/office/match?address=10.1.2.3", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if !decodeMatchResponse(t, rec).Matched {
		t.Fatal("expected matched true")
	}
}
