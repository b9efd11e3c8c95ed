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

	"github.com/openbooks/openbooks/internal/adapter/http/handler"
	apimiddleware "github.com/openbooks/openbooks/internal/adapter/http/middleware"
	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
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

	body := `{"business_id":"biz-1","date":"2024-03-15","entries":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/", strings.NewReader(body))
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
		"POST /api/v1/businesses/",
		"GET /api/v1/businesses/{id}",
		"GET /api/v1/businesses/{id}/accounts",
		"GET /api/v1/businesses/{id}/transactions",
		"GET /api/v1/businesses/{id}/next-sequence",
		"POST /api/v1/businesses/{id}/recalculate",
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/search",
		"PATCH /api/v1/accounts/{id}",
		"POST /api/v1/transactions/",
		"GET /api/v1/transactions/{id}",
		"GET /api/v1/account-types",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(&stubPostingService{}, &stubJournalService{}, &stubBalanceService{}),
		AccountHandler:     handler.NewAccountHandler(&stubAccountService{}),
		BusinessHandler:    handler.NewBusinessHandler(&stubBusinessService{}),
		HealthHandler:      &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubPostingService struct{}

func (stubPostingService) PostTransaction(ctx context.Context, input usecase.PostTransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: 1, BusinessID: input.BusinessID}, nil
}

func (stubPostingService) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, []*domain.Entry, error) {
	return &domain.Transaction{ID: id}, nil, nil
}

func (stubPostingService) NextSequenceNumber(ctx context.Context, businessID string) (int64, error) {
	return 1, nil
}

type stubJournalService struct{}

func (stubJournalService) ListJournal(ctx context.Context, input usecase.ListJournalInput) (*usecase.JournalReport, error) {
	return &usecase.JournalReport{DebitTotal: decimal.Zero, CreditTotal: decimal.Zero}, nil
}

type stubBalanceService struct{}

func (stubBalanceService) Recalculate(ctx context.Context, businessID string) error {
	return nil
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: "acc"}, nil
}

func (stubAccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return &domain.Account{ID: id}, nil
}

func (stubAccountService) UpdateAccount(ctx context.Context, id string, input usecase.UpdateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: id}, nil
}

func (stubAccountService) ListAccounts(ctx context.Context, businessID string) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (stubAccountService) SearchAccounts(ctx context.Context, businessID, query string, limit int) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (stubAccountService) ListAccountTypes(ctx context.Context) ([]*domain.AccountType, error) {
	return []*domain.AccountType{}, nil
}

type stubBusinessService struct{}

func (stubBusinessService) RegisterBusiness(ctx context.Context, input usecase.RegisterBusinessInput) (*domain.Business, error) {
	return &domain.Business{ID: "biz"}, nil
}

func (stubBusinessService) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	return &domain.Business{ID: id}, nil
}

func (stubBusinessService) ListBusinesses(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Business, error) {
	return []*domain.Business{}, nil
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
