package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type idempotencyStoreStub struct {
	stored   map[string][]byte
	checkErr error
}

func newIdempotencyStoreStub() *idempotencyStoreStub {
	return &idempotencyStoreStub{stored: make(map[string][]byte)}
}

func (s *idempotencyStoreStub) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if s.checkErr != nil {
		return false, nil, s.checkErr
	}
	if existing, ok := s.stored[key]; ok {
		return true, existing, nil
	}
	s.stored[key] = []byte("processing")
	return false, nil, nil
}

func (s *idempotencyStoreStub) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.stored[key] = response
	return nil
}

func TestIdempotencyMiddleware_FirstRequestPassesThrough(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store, 0)

	calls := 0
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"mv-1"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/movements", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if calls != 1 {
		t.Fatalf("expected handler call, got %d", calls)
	}
	if string(store.stored["key-1"]) != `{"id":"mv-1"}` {
		t.Fatalf("expected stored response, got %q", store.stored["key-1"])
	}
}

func TestIdempotencyMiddleware_ReplayReturnsCachedResponse(t *testing.T) {
	store := newIdempotencyStoreStub()
	store.stored["key-1"] = []byte(`{"id":"mv-1"}`)
	mw := NewIdempotencyMiddleware(store, 0)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on replay")
	}))

	req := httptest.NewRequest(http.MethodPost, "/movements", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatal("expected replay header")
	}
	if rec.Body.String() != `{"id":"mv-1"}` {
		t.Fatalf("expected cached body, got %q", rec.Body.String())
	}
}

func TestIdempotencyMiddleware_SkipsWithoutKey(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store, 0)

	calls := 0
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	req := httptest.NewRequest(http.MethodPost, "/movements", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if calls != 1 {
		t.Fatalf("expected pass-through, got %d calls", calls)
	}
	if len(store.stored) != 0 {
		t.Fatal("nothing should be stored without a key")
	}
}

func TestIdempotencyMiddleware_SkipsReadRequests(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store, 0)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/movements", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if len(store.stored) != 0 {
		t.Fatal("GET requests must bypass the idempotency store")
	}
}
