package dto

import (
	"encoding/json"
	"testing"

	"github.com/contafin/ledger/internal/domain"
)

func TestCreateMovementRequestToUseCaseInput(t *testing.T) {
	req := CreateMovementRequest{
		Date:    "2024-01-15",
		Concept: "salary",
		Type:    "Ingreso",
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Type != domain.TypeIncome {
		t.Errorf("type = %q, want %q", input.Type, domain.TypeIncome)
	}
	if input.Date == nil || input.Date.Format(DateLayout) != "2024-01-15" {
		t.Errorf("date not parsed: %v", input.Date)
	}
}

func TestCreateMovementRequestRejectsBadDate(t *testing.T) {
	req := CreateMovementRequest{Concept: "x", Date: "15/01/2024"}

	if _, err := req.ToUseCaseInput(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestCreateMovementRequestRejectsUnknownType(t *testing.T) {
	req := CreateMovementRequest{Concept: "x", Type: "transfer"}

	if _, err := req.ToUseCaseInput(); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestCreateMovementRequestRejectsNonNumericAmount(t *testing.T) {
	payloads := []string{
		`{"concept":"x","amount":"abc"}`,
		`{"concept":"x","amount":true}`,
		`{"concept":"x","amount":{}}`,
	}

	for _, payload := range payloads {
		var req CreateMovementRequest
		if err := json.Unmarshal([]byte(payload), &req); err == nil {
			t.Errorf("expected decode error for %s", payload)
		}
	}
}

func TestCreateMovementRequestAcceptsNumericStringAmount(t *testing.T) {
	var req CreateMovementRequest
	if err := json.Unmarshal([]byte(`{"concept":"x","amount":"-123.45"}`), &req); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if req.Amount.String() != "-123.45" {
		t.Errorf("amount = %s, want -123.45", req.Amount)
	}
}

func TestUpdateMovementRequestPartialFields(t *testing.T) {
	var req UpdateMovementRequest
	if err := json.Unmarshal([]byte(`{"concept":"renamed"}`), &req); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Concept == nil || *input.Concept != "renamed" {
		t.Errorf("concept not carried over: %v", input.Concept)
	}
	if input.Amount != nil || input.Date != nil || input.Type != nil {
		t.Error("absent fields must stay nil")
	}
}
