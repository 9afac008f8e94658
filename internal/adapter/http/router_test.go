package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/adapter/http/handler"
	apimiddleware "github.com/contafin/ledger/internal/adapter/http/middleware"
	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"concept":"salary","amount":100}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/movements/",
		"GET /api/v1/movements/",
		"GET /api/v1/movements/{id}",
		"PUT /api/v1/movements/{id}",
		"DELETE /api/v1/movements/{id}",
		"GET /api/v1/ledger/balance",
		"GET /api/v1/ledger/totals",
		"GET /api/v1/ledger/statistics",
		"GET /api/v1/ledger/consistency",
		"POST /api/v1/ledger/recalculate",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	movementHandler := handler.NewMovementHandler(&stubMovementService{}, &stubMovementQuery{})
	ledgerHandler := handler.NewLedgerHandler(&stubLedgerQuery{}, &stubLedgerAdmin{}, &stubConsistency{})

	cfg := RouterConfig{
		HealthHandler:   &handler.HealthHandler{},
		MovementHandler: movementHandler,
		LedgerHandler:   ledgerHandler,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubMovementService struct{}

func (stubMovementService) InsertMovement(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error) {
	return &domain.Movement{ID: "mv"}, nil
}

func (stubMovementService) UpdateMovement(ctx context.Context, id string, patch usecase.UpdateMovementInput) (*domain.Movement, error) {
	return &domain.Movement{ID: id}, nil
}

func (stubMovementService) DeleteMovement(ctx context.Context, id string) error {
	return nil
}

func (stubMovementService) GetMovement(ctx context.Context, id string) (*domain.Movement, error) {
	return &domain.Movement{ID: id}, nil
}

type stubMovementQuery struct{}

func (stubMovementQuery) ListMovements(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error) {
	return []*domain.Movement{}, nil
}

type stubLedgerQuery struct{}

func (stubLedgerQuery) CurrentBalance(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubLedgerQuery) GetPeriodTotals(ctx context.Context, from, to time.Time) (*usecase.PeriodTotals, error) {
	return &usecase.PeriodTotals{}, nil
}

func (stubLedgerQuery) GetStatistics(ctx context.Context) (*usecase.Statistics, error) {
	return &usecase.Statistics{}, nil
}

type stubLedgerAdmin struct{}

func (stubLedgerAdmin) RecalculateAll(ctx context.Context) (*usecase.RecalculationResult, error) {
	return &usecase.RecalculationResult{}, nil
}

type stubConsistency struct{}

func (stubConsistency) CheckConsistency(ctx context.Context) (bool, error) {
	return true, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
