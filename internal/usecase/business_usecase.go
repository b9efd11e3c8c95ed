package usecase

import (
	"context"
	"time"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/infrastructure/metrics"
)

// BusinessUseCase handles business registration and lookup. The acting
// user's identity is resolved by the caller; this core only records the
// owner reference.
type BusinessUseCase struct {
	businessRepo BusinessRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewBusinessUseCase creates a new BusinessUseCase. metrics may be nil.
func NewBusinessUseCase(businessRepo BusinessRepository, idGen IDGenerator, metrics *metrics.Metrics) *BusinessUseCase {
	return &BusinessUseCase{
		businessRepo: businessRepo,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// RegisterBusinessInput represents input for registering a business.
// Profile fields beyond name and type are only stored on the premium plan.
type RegisterBusinessInput struct {
	OwnerID      string
	Name         string
	BusinessType string
	Plan         domain.Plan
	Industry     string
	NTN          string
	Address      string
	City         string
	Country      string
	Phone        string
}

// RegisterBusiness registers a new business.
func (uc *BusinessUseCase) RegisterBusiness(ctx context.Context, input RegisterBusinessInput) (*domain.Business, error) {
	now := time.Now().UTC()

	business := &domain.Business{
		ID:           uc.idGen.Generate(),
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		BusinessType: input.BusinessType,
		Plan:         input.Plan,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if input.Plan == domain.PlanPremium {
		business.Industry = input.Industry
		business.NTN = input.NTN
		business.Address = input.Address
		business.City = input.City
		business.Country = input.Country
		business.Phone = input.Phone
	}

	if err := business.Validate(); err != nil {
		return nil, err
	}

	if err := uc.businessRepo.Create(ctx, business); err != nil {
		return nil, storeError(err)
	}

	if uc.metrics != nil {
		uc.metrics.BusinessesRegistered.Inc()
	}

	return business, nil
}

// GetBusiness retrieves a business by ID.
func (uc *BusinessUseCase) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	business, err := uc.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return business, nil
}

// ListBusinesses lists the businesses owned by ownerID.
func (uc *BusinessUseCase) ListBusinesses(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Business, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	businesses, err := uc.businessRepo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, storeError(err)
	}
	return businesses, nil
}
