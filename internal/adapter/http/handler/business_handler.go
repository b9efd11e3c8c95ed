package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openbooks/openbooks/internal/adapter/http/dto"
	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

// BusinessService defines the behavior needed by BusinessHandler.
type BusinessService interface {
	RegisterBusiness(ctx context.Context, input usecase.RegisterBusinessInput) (*domain.Business, error)
	GetBusiness(ctx context.Context, id string) (*domain.Business, error)
	ListBusinesses(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Business, error)
}

// BusinessHandler handles business-related HTTP requests.
type BusinessHandler struct {
	businessUC BusinessService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(businessUC BusinessService) *BusinessHandler {
	return &BusinessHandler{businessUC: businessUC}
}

// Register registers a new business.
func (h *BusinessHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	business, err := h.businessUC.RegisterBusiness(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register business", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BusinessFromDomain(business))
}

// Get retrieves a business by ID.
func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing business ID", "")
		return
	}

	business, err := h.businessUC.GetBusiness(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get business", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BusinessFromDomain(business))
}

// List lists the businesses owned by the given owner.
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		writeError(w, http.StatusBadRequest, "missing owner_id", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	businesses, err := h.businessUC.ListBusinesses(r.Context(), ownerID, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list businesses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BusinessesFromDomain(businesses))
}
