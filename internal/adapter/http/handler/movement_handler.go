package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/contafin/ledger/internal/adapter/http/dto"
	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/usecase"
)

// MovementService defines the write behavior needed by MovementHandler.
type MovementService interface {
	InsertMovement(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error)
	UpdateMovement(ctx context.Context, id string, patch usecase.UpdateMovementInput) (*domain.Movement, error)
	DeleteMovement(ctx context.Context, id string) error
	GetMovement(ctx context.Context, id string) (*domain.Movement, error)
}

// MovementQueryService defines the read behavior needed by MovementHandler.
type MovementQueryService interface {
	ListMovements(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error)
}

// MovementHandler handles movement-related HTTP requests.
type MovementHandler struct {
	movementUC MovementService
	queryUC    MovementQueryService
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(movementUC MovementService, queryUC MovementQueryService) *MovementHandler {
	return &MovementHandler{
		movementUC: movementUC,
		queryUC:    queryUC,
	}
}

// Create inserts a new movement.
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	movement, err := h.movementUC.InsertMovement(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to insert movement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// Get retrieves a movement by ID.
func (h *MovementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing movement ID", "")
		return
	}

	movement, err := h.movementUC.GetMovement(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get movement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromDomain(movement))
}

// Update applies a partial update to a movement.
func (h *MovementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing movement ID", "")
		return
	}

	var req dto.UpdateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	patch, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	movement, err := h.movementUC.UpdateMovement(r.Context(), id, patch)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update movement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromDomain(movement))
}

// Delete removes a movement.
func (h *MovementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing movement ID", "")
		return
	}

	if err := h.movementUC.DeleteMovement(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete movement", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists movements in ledger order.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	movements, err := h.queryUC.ListMovements(r.Context(), usecase.ListMovementsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}
