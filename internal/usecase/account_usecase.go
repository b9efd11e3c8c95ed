package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/infrastructure/metrics"
)

// AccountUseCase handles chart-of-accounts management. Balances are not
// writable through this use case.
type AccountUseCase struct {
	accountRepo  AccountRepository
	typeRepo     AccountTypeRepository
	businessRepo BusinessRepository
	idGen        IDGenerator
	cache        Cache
	metrics      *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. cache and metrics may be
// nil.
func NewAccountUseCase(
	accountRepo AccountRepository,
	typeRepo AccountTypeRepository,
	businessRepo BusinessRepository,
	idGen IDGenerator,
	cache Cache,
	metrics *metrics.Metrics,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:  accountRepo,
		typeRepo:     typeRepo,
		businessRepo: businessRepo,
		idGen:        idGen,
		cache:        cache,
		metrics:      metrics,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	BusinessID      string
	TypeID          int32
	Name            string
	Description     string
	ParentAccountID *string
}

// CreateAccount creates a new account with a zero starting balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if _, err := uc.businessRepo.GetByID(ctx, input.BusinessID); err != nil {
		return nil, storeError(err)
	}

	if _, err := uc.typeRepo.GetByID(ctx, input.TypeID); err != nil {
		return nil, storeError(err)
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:              uc.idGen.Generate(),
		BusinessID:      input.BusinessID,
		TypeID:          input.TypeID,
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		ParentAccountID: input.ParentAccountID,
		Balance:         decimal.Zero,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, storeError(err)
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return account, nil
}

// UpdateAccountInput represents input for updating an account. Nil fields
// are left unchanged.
type UpdateAccountInput struct {
	Name            *string
	Description     *string
	ParentAccountID *string
	Active          *bool
}

// UpdateAccount updates an account's editable fields. The balance and the
// owning business are immutable here.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id string, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	if input.Name != nil {
		if err := domain.ValidateAccountName(*input.Name); err != nil {
			return nil, err
		}
		account.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		account.Description = *input.Description
	}
	if input.ParentAccountID != nil {
		account.ParentAccountID = input.ParentAccountID
	}
	if input.Active != nil {
		account.Active = *input.Active
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, storeError(err)
	}

	return account, nil
}

// ListAccounts lists the business's chart of accounts with current balances.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, businessID string) ([]*domain.Account, error) {
	accounts, err := uc.accountRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, storeError(err)
	}
	return accounts, nil
}

// SearchAccounts finds accounts of the business whose name contains the
// query, for autocomplete.
func (uc *AccountUseCase) SearchAccounts(ctx context.Context, businessID, query string, limit int) ([]*domain.Account, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	limit, _ = domain.ValidatePagination(limit, 0)
	if limit > 10 {
		limit = 10
	}

	accounts, err := uc.accountRepo.SearchByName(ctx, businessID, query, limit)
	if err != nil {
		return nil, storeError(err)
	}
	return accounts, nil
}

const accountTypeCacheKey = "account-types"

// ListAccountTypes returns the account-type reference set. The set is static
// seed data, so it is cached when a cache is configured.
func (uc *AccountUseCase) ListAccountTypes(ctx context.Context) ([]*domain.AccountType, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, accountTypeCacheKey); err == nil && raw != nil {
			var types []*domain.AccountType
			if err := json.Unmarshal(raw, &types); err == nil {
				return types, nil
			}
		}
	}

	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(types); err == nil {
			_ = uc.cache.Set(ctx, accountTypeCacheKey, raw, AccountTypeCacheTTL)
		}
	}

	return types, nil
}
