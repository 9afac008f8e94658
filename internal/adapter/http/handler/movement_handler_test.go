package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/adapter/http/dto"
	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/usecase"
)

type movementServiceStub struct {
	insertFn func(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error)
	updateFn func(ctx context.Context, id string, patch usecase.UpdateMovementInput) (*domain.Movement, error)
	deleteFn func(ctx context.Context, id string) error
	getFn    func(ctx context.Context, id string) (*domain.Movement, error)
}

func (s *movementServiceStub) InsertMovement(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error) {
	return s.insertFn(ctx, input)
}

func (s *movementServiceStub) UpdateMovement(ctx context.Context, id string, patch usecase.UpdateMovementInput) (*domain.Movement, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *movementServiceStub) DeleteMovement(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *movementServiceStub) GetMovement(ctx context.Context, id string) (*domain.Movement, error) {
	return s.getFn(ctx, id)
}

type movementQueryStub struct {
	listFn func(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error)
}

func (s *movementQueryStub) ListMovements(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error) {
	return s.listFn(ctx, input)
}

func newMovementStub() *movementServiceStub {
	return &movementServiceStub{
		insertFn: func(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error) { return nil, nil },
		updateFn: func(ctx context.Context, id string, patch usecase.UpdateMovementInput) (*domain.Movement, error) {
			return nil, nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
		getFn:    func(ctx context.Context, id string) (*domain.Movement, error) { return nil, nil },
	}
}

func TestMovementHandler_Create_Success(t *testing.T) {
	movement := &domain.Movement{
		ID:      "mv-1",
		Concept: "salary",
		Amount:  decimal.RequireFromString("100"),
		Credit:  decimal.RequireFromString("100"),
		Balance: decimal.RequireFromString("100"),
	}

	stub := newMovementStub()
	var captured usecase.CreateMovementInput
	stub.insertFn = func(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error) {
		captured = input
		return movement, nil
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	body := []byte(`{"concept":"salary","amount":100,"type":"income","date":"2024-01-15"}`)
	req := httptest.NewRequest(http.MethodPost, "/movements", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Concept != "salary" || captured.Type != domain.TypeIncome {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if captured.Date == nil || captured.Date.Format(dto.DateLayout) != "2024-01-15" {
		t.Fatalf("expected parsed date, got %v", captured.Date)
	}

	var resp dto.MovementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "mv-1" {
		t.Fatalf("expected movement ID mv-1, got %s", resp.ID)
	}
}

func TestMovementHandler_Create_InvalidJSON(t *testing.T) {
	stub := newMovementStub()
	stub.insertFn = func(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error) {
		t.Fatal("InsertMovement should not be called for invalid payload")
		return nil, nil
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	req := httptest.NewRequest(http.MethodPost, "/movements", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMovementHandler_Create_NonNumericAmount(t *testing.T) {
	stub := newMovementStub()
	stub.insertFn = func(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error) {
		t.Fatal("InsertMovement should not be called for a garbage amount")
		return nil, nil
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	req := httptest.NewRequest(http.MethodPost, "/movements",
		bytes.NewBufferString(`{"concept":"x","amount":"not-a-number"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMovementHandler_Create_ValidationError(t *testing.T) {
	stub := newMovementStub()
	stub.insertFn = func(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error) {
		return nil, domain.ErrConceptEmpty
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	req := httptest.NewRequest(http.MethodPost, "/movements",
		bytes.NewBufferString(`{"concept":"  ","amount":10}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMovementHandler_Get(t *testing.T) {
	stub := newMovementStub()
	stub.getFn = func(ctx context.Context, id string) (*domain.Movement, error) {
		if id != "mv-1" {
			t.Fatalf("expected id mv-1, got %s", id)
		}
		return &domain.Movement{ID: "mv-1", Concept: "salary"}, nil
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	req := httptest.NewRequest(http.MethodGet, "/movements/mv-1", nil)
	req = setChiURLParam(req, "id", "mv-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMovementHandler_Get_NotFound(t *testing.T) {
	stub := newMovementStub()
	stub.getFn = func(ctx context.Context, id string) (*domain.Movement, error) {
		return nil, domain.ErrMovementNotFound
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	req := httptest.NewRequest(http.MethodGet, "/movements/mv-1", nil)
	req = setChiURLParam(req, "id", "mv-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMovementHandler_Update(t *testing.T) {
	stub := newMovementStub()
	stub.updateFn = func(ctx context.Context, id string, patch usecase.UpdateMovementInput) (*domain.Movement, error) {
		if id != "mv-1" {
			t.Fatalf("expected id mv-1, got %s", id)
		}
		if patch.Amount == nil || !patch.Amount.Equal(decimal.RequireFromString("40")) {
			t.Fatalf("expected amount patch 40, got %+v", patch.Amount)
		}
		if patch.Concept != nil {
			t.Fatal("concept must stay nil when absent from the payload")
		}
		return &domain.Movement{ID: "mv-1"}, nil
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	req := httptest.NewRequest(http.MethodPut, "/movements/mv-1",
		bytes.NewBufferString(`{"amount":40}`))
	req = setChiURLParam(req, "id", "mv-1")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMovementHandler_Delete(t *testing.T) {
	stub := newMovementStub()
	deleted := ""
	stub.deleteFn = func(ctx context.Context, id string) error {
		deleted = id
		return nil
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	req := httptest.NewRequest(http.MethodDelete, "/movements/mv-1", nil)
	req = setChiURLParam(req, "id", "mv-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "mv-1" {
		t.Fatalf("expected delete of mv-1, got %q", deleted)
	}
}

func TestMovementHandler_Delete_NotFound(t *testing.T) {
	stub := newMovementStub()
	stub.deleteFn = func(ctx context.Context, id string) error {
		return domain.ErrMovementNotFound
	}
	handler := NewMovementHandler(stub, &movementQueryStub{})

	req := httptest.NewRequest(http.MethodDelete, "/movements/mv-1", nil)
	req = setChiURLParam(req, "id", "mv-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMovementHandler_List(t *testing.T) {
	handler := NewMovementHandler(newMovementStub(), &movementQueryStub{
		listFn: func(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error) {
			if input.Limit != 5 || input.Offset != 2 {
				t.Fatalf("expected limit=5 offset=2, got %+v", input)
			}
			return []*domain.Movement{{ID: "mv-1"}, {ID: "mv-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/movements?limit=5&offset=2", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.MovementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(resp))
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
